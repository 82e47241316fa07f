package tuntap

import (
	"bytes"
	"net"
	"os"
	"unsafe"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// DevicePath is the path to the TUN/TAP clone device.
const DevicePath = "/dev/net/tun"

// defaultPrefixLen is the prefix length used by AddAddress.
const defaultPrefixLen = 8

// Interface is an open TUN or TAP device together with the control
// socket used to configure it. Both descriptors are exclusively owned
// by the Interface and are released by Close.
type Interface struct {
	kind  Kind
	dev   *os.File
	sock  int
	name  [unix.IFNAMSIZ]byte
	index int32
}

// New creates a device of the given kind and lets the kernel pick a
// name for it.
func New(kind Kind) (*Interface, error) {
	return NewNamed(kind, "")
}

// NewNamed creates a device with the given name. An empty name lets
// the kernel pick one; either way the name confirmed by the kernel is
// available through Name. On failure no descriptors remain open.
func NewNamed(kind Kind, name string) (*Interface, error) {
	if len(name) > unix.IFNAMSIZ-1 {
		return nil, errors.Wrapf(ErrNameTooLong, "max length is %d", unix.IFNAMSIZ-1)
	}

	dev, ifname, err := openAndAttach(kind, name)
	if err != nil {
		return nil, err
	}

	sock, err := openCtlSocket()
	if err != nil {
		dev.Close()
		return nil, err
	}

	index, err := resolveIndex(sock, ifname)
	if err != nil {
		closeFd(sock)
		dev.Close()
		return nil, err
	}

	iface := &Interface{
		kind:  kind,
		dev:   dev,
		sock:  sock,
		name:  ifname,
		index: index,
	}

	confirmed, _ := iface.Name()
	log.WithFields(logrus.Fields{
		"kind":   kind.String(),
		"ifname": confirmed,
		"index":  index,
	}).Debug("interface created")

	return iface, nil
}

// openAndAttach opens the clone device and attaches a new interface to
// it. The returned name is the kernel's answer and may differ from the
// requested one.
func openAndAttach(kind Kind, name string) (*os.File, [unix.IFNAMSIZ]byte, error) {
	var empty [unix.IFNAMSIZ]byte

	dev, err := openDev()
	if err != nil {
		return nil, empty, configErr(StepDeviceOpen, err)
	}

	req := ifreqFlags{flags: kind.attachFlag()}
	copy(req.name[:unix.IFNAMSIZ-1], name)

	if err := ioctl(dev.Fd(), ioctl_TUNSETIFF, uintptr(unsafe.Pointer(&req))); err != nil {
		dev.Close()
		return nil, empty, configErr(StepAttach, err)
	}

	return dev, req.name, nil
}

// Name returns the kernel-confirmed interface name. It fails only if
// the stored name buffer has lost its terminator, which would be an
// invariant violation.
func (t *Interface) Name() (string, error) {
	n := bytes.IndexByte(t.name[:], 0)
	if n < 0 {
		return "", errNameTerminator
	}
	return string(t.name[:n]), nil
}

// Index returns the kernel-assigned interface index.
func (t *Interface) Index() int {
	return int(t.index)
}

func (t *Interface) String() string {
	name, _ := t.Name()
	return t.kind.String() + "(" + name + ")"
}

// Up brings the interface administratively up. It is a no-op if the
// interface is already up and running.
func (t *Interface) Up() error {
	flags, err := getFlags(t.sock, t.name)
	if err != nil {
		return err
	}

	const upRunning = int16(unix.IFF_UP | unix.IFF_RUNNING)
	if flags&upRunning == upRunning {
		// already up
		return nil
	}

	if err := setFlags(t.sock, t.name, flags|upRunning); err != nil {
		return err
	}

	name, _ := t.Name()
	log.WithField("ifname", name).Debug("interface up")
	return nil
}

// AddAddress brings the interface up and assigns ip to it, with the
// prefix length fixed at defaultPrefixLen. Only 16-byte addresses are
// supported; 4-byte addresses fail with ErrIPv4NotImplemented.
func (t *Interface) AddAddress(ip []byte) error {
	if err := t.Up(); err != nil {
		return err
	}
	if err := checkAddress(ip); err != nil {
		return err
	}

	if err := setAddress(t.sock, t.index, addrWords(ip), defaultPrefixLen); err != nil {
		return err
	}

	name, _ := t.Name()
	log.WithFields(logrus.Fields{
		"ifname": name,
		"addr":   net.IP(ip).String(),
	}).Info("address assigned")

	return nil
}

// Read reads one frame into buf and returns the filled part. A short
// read is a complete frame, not an error. buf must hold at least MTU
// bytes.
func (t *Interface) Read(buf []byte) ([]byte, error) {
	if len(buf) < MTU {
		return nil, errors.Wrapf(ErrShortBuffer, "need %d bytes, got %d", MTU, len(buf))
	}
	if t.dev == nil {
		return nil, ErrClosed
	}

	n, err := t.dev.Read(buf)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

// Write writes one frame, retrying on short writes until data is fully
// written.
func (t *Interface) Write(data []byte) error {
	if t.dev == nil {
		return ErrClosed
	}

	for len(data) > 0 {
		n, err := t.dev.Write(data)
		if err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// File exposes the device descriptor, e.g. for readiness-based
// multiplexing. It remains owned by the Interface.
func (t *Interface) File() *os.File {
	return t.dev
}

// Close releases the control socket and the device descriptor. Each is
// closed exactly once; further calls return ErrClosed.
func (t *Interface) Close() error {
	if t.dev == nil {
		return ErrClosed
	}

	closeFd(t.sock)
	t.sock = -1

	err := t.dev.Close()
	t.dev = nil
	return err
}
