package tuntap

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// nolint: golint
var (
	ioctl_TUNSETIFF = _IOW('T', 202, unsafe.Sizeof(int32(0)))
)

// ifreqFlags is struct ifreq with its flags member, used by TUNSETIFF,
// SIOCGIFFLAGS and SIOCSIFFLAGS. The trailing padding brings it up to
// the kernel's sizeof(struct ifreq).
type ifreqFlags struct {
	name  [unix.IFNAMSIZ]byte
	flags int16
	_     [22]byte
}

// ifreqIndex is struct ifreq with its ifindex member, used by
// SIOCGIFINDEX.
type ifreqIndex struct {
	name  [unix.IFNAMSIZ]byte
	index int32
	_     [20]byte
}

// in6Ifreq is struct in6_ifreq from linux/ipv6.h, used by SIOCSIFADDR
// on an AF_INET6 socket.
type in6Ifreq struct {
	addr      [8]uint16
	prefixlen uint32
	index     int32
}

// attachFlag returns the TUNSETIFF flag selecting the device layer.
func (k Kind) attachFlag() int16 {
	if k == TAP {
		return unix.IFF_TAP
	}
	return unix.IFF_TUN
}

func _IOW(typ, nr, size uintptr) uintptr {
	return 1<<30 | size<<16 | typ<<8 | nr
}
