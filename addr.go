package tuntap

import (
	"github.com/pkg/errors"
)

// addrWords converts a 16-byte address into the kernel's in6_addr
// representation: eight 16-bit words, low byte first, so that the
// in-memory layout on a little-endian host equals network byte order.
func addrWords(ip []byte) (words [8]uint16) {
	for i := range words {
		words[i] = uint16(ip[2*i+1])<<8 | uint16(ip[2*i])
	}
	return
}

func checkAddress(ip []byte) error {
	switch len(ip) {
	case 16:
		return nil
	case 4:
		return ErrIPv4NotImplemented
	default:
		return errors.Wrapf(ErrAddressLength, "got %d bytes", len(ip))
	}
}
