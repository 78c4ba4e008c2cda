package control

import (
	"syscall"

	"golang.org/x/sys/unix"
)

func GetControl(options Options) func(network, address string, c syscall.RawConn) error {
	return func(network, address string, c syscall.RawConn) (err error) {
		e := c.Control(func(fd uintptr) {
			if err = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEADDR, boolToInt(options.ReuseAddr)); err != nil {
				return
			}
			err = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEPORT, boolToInt(options.ReusePort))
		})
		if e != nil {
			return e
		}
		return
	}
}
