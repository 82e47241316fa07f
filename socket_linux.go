package tuntap

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// openCtlSocket opens the datagram socket serving as the ioctl handle
// for interface configuration. No datagrams are ever sent or received
// on it.
func openCtlSocket() (int, error) {
	sock, err := ctlSocket()
	if err != nil {
		return -1, configErr(StepSocketCreate, err)
	}
	return sock, nil
}

// resolveIndex looks up the kernel's index for the named interface.
func resolveIndex(sock int, name [unix.IFNAMSIZ]byte) (int32, error) {
	req := ifreqIndex{name: name, index: -1}
	if err := ioctl(uintptr(sock), unix.SIOCGIFINDEX, uintptr(unsafe.Pointer(&req))); err != nil {
		return -1, configErr(StepIndexResolve, err)
	}
	return req.index, nil
}

func getFlags(sock int, name [unix.IFNAMSIZ]byte) (int16, error) {
	req := ifreqFlags{name: name}
	if err := ioctl(uintptr(sock), unix.SIOCGIFFLAGS, uintptr(unsafe.Pointer(&req))); err != nil {
		return 0, configErr(StepFlagsGet, err)
	}
	return req.flags, nil
}

func setFlags(sock int, name [unix.IFNAMSIZ]byte, flags int16) error {
	req := ifreqFlags{name: name, flags: flags}
	if err := ioctl(uintptr(sock), unix.SIOCSIFFLAGS, uintptr(unsafe.Pointer(&req))); err != nil {
		return configErr(StepFlagsSet, err)
	}
	return nil
}

func setAddress(sock int, index int32, addr [8]uint16, prefixlen uint32) error {
	req := in6Ifreq{addr: addr, prefixlen: prefixlen, index: index}
	if err := ioctl(uintptr(sock), unix.SIOCSIFADDR, uintptr(unsafe.Pointer(&req))); err != nil {
		return configErr(StepAddressAssign, err)
	}
	return nil
}
