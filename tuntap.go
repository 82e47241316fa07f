// Package tuntap creates Linux TUN/TAP devices, configures them and
// exchanges raw frames with them. A TUN device carries IP packets, a
// TAP device carries Ethernet frames; either way the payload is an
// opaque byte buffer, this package does not interpret it.
package tuntap

// Kind selects the layer a device operates on.
type Kind int

const (
	// TUN devices exchange raw IP packets.
	TUN Kind = iota

	// TAP devices exchange raw Ethernet frames.
	TAP
)

func (k Kind) String() string {
	if k == TAP {
		return "Tap"
	}
	return "Tun"
}

// MTU is the largest frame the device hands to or accepts from the
// caller in a single read or write.
const MTU = 1500
