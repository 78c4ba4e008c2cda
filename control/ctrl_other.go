//go:build !linux && !windows

package control

import "syscall"

// GetControl leaves sockets untouched on this platform.
func GetControl(options Options) func(network, address string, c syscall.RawConn) error {
	return nil
}
