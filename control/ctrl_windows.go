package control

import (
	"syscall"

	"golang.org/x/sys/windows"
)

// GetControl ignores ReusePort, which Windows does not have.
func GetControl(options Options) func(network, address string, c syscall.RawConn) error {
	return func(network, address string, c syscall.RawConn) (err error) {
		e := c.Control(func(fd uintptr) {
			err = windows.SetsockoptInt(windows.Handle(fd), windows.SOL_SOCKET, windows.SO_REUSEADDR, boolToInt(options.ReuseAddr))
		})
		if e != nil {
			return e
		}
		return
	}
}
