package tuntap

import (
	"os"

	"golang.org/x/sys/unix"
)

// Ioctl executes an ioctl syscall.
func Ioctl(fd, cmd, ptr uintptr) error {
	_, _, e := unix.Syscall(unix.SYS_IOCTL, fd, cmd, ptr)
	if e != 0 {
		return e
	}
	return nil
}

// replaced in tests
var (
	ioctl = Ioctl

	openDev = func() (*os.File, error) {
		return os.OpenFile(DevicePath, os.O_RDWR, 0)
	}

	ctlSocket = func() (int, error) {
		return unix.Socket(unix.AF_INET6, unix.SOCK_DGRAM, 0)
	}

	closeFd = unix.Close
)
