// Command tundump creates a TUN or TAP device, configures it and
// prints a one-line summary of every frame arriving on it. Useful for
// verifying that a freshly created device actually carries traffic.
package main

import (
	"encoding/binary"
	"flag"
	"log"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/sirupsen/logrus"
	"github.com/vishvananda/netlink"

	"github.com/digineo/go-tuntap"
)

var (
	useTap  = false
	ifname  = ""
	address = ""
	count   = 0
	verbose = false
)

func main() {
	log.SetFlags(log.Lshortfile)

	flag.BoolVar(&useTap, "tap", useTap, "create a TAP device instead of a TUN device")
	flag.StringVar(&ifname, "name", ifname, "interface `NAME` (empty lets the kernel choose)")
	flag.StringVar(&address, "addr", address, "IPv6 `ADDRESS` to assign")
	flag.IntVar(&count, "count", count, "stop after `N` frames (0 = run until interrupted)")
	flag.BoolVar(&verbose, "v", verbose, "enable verbose output")
	flag.Parse()

	if verbose {
		l := logrus.New()
		l.SetLevel(logrus.DebugLevel)
		tuntap.SetLogger(l)
	}

	kind := tuntap.TUN
	if useTap {
		kind = tuntap.TAP
	}

	iface, err := tuntap.NewNamed(kind, ifname)
	if err != nil {
		log.Fatalf("error creating device: %v", err)
	}
	defer iface.Close()

	name, err := iface.Name()
	if err != nil {
		log.Fatalf("invalid interface name: %v", err)
	}
	log.Printf("created %s", iface)

	if address != "" {
		ip := net.ParseIP(address)
		if ip == nil {
			log.Fatalf("cannot parse address %q", address)
		}
		raw := []byte(ip.To16())
		if ip4 := ip.To4(); ip4 != nil {
			raw = ip4
		}
		if err := iface.AddAddress(raw); err != nil {
			log.Fatalf("error assigning %s to %s: %v", address, name, err)
		}
	} else if err := iface.Up(); err != nil {
		log.Fatalf("error bringing %s up: %v", name, err)
	}

	// cross-check with what the kernel reports
	link, err := netlink.LinkByName(name)
	if err != nil {
		log.Fatalf("error looking up %s: %v", name, err)
	}
	attrs := link.Attrs()
	log.Printf("%s: index=%d mtu=%d flags=%s", name, attrs.Index, attrs.MTU, attrs.Flags)

	done := make(chan struct{})
	go func() {
		dumpFrames(iface, kind)
		close(done)
	}()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-ch:
		log.Printf("[interrupt received] %s", sig)
	case <-done:
	}
}

func dumpFrames(iface *tuntap.Interface, kind tuntap.Kind) {
	buf := make([]byte, tuntap.MTU)

	for n := 0; count == 0 || n < count; n++ {
		frame, err := iface.Read(buf)
		if err != nil {
			log.Println(err)
			return
		}

		if pkt := decode(kind, frame); pkt != nil {
			log.Printf("%4d bytes: %s", len(frame), layerNames(pkt))
		} else {
			log.Printf("%4d bytes: % x", len(frame), frame)
		}
	}
}

// decode interprets a frame read from the device. Frames carry a
// 4-byte packet information header (flags and the EtherType of the
// payload) because the device is not created with IFF_NO_PI.
func decode(kind tuntap.Kind, frame []byte) gopacket.Packet {
	if len(frame) < 4 {
		return nil
	}
	payload := frame[4:]

	if kind == tuntap.TAP {
		return gopacket.NewPacket(payload, layers.LayerTypeEthernet, gopacket.Default)
	}

	switch layers.EthernetType(binary.BigEndian.Uint16(frame[2:4])) {
	case layers.EthernetTypeIPv4:
		return gopacket.NewPacket(payload, layers.LayerTypeIPv4, gopacket.Default)
	case layers.EthernetTypeIPv6:
		return gopacket.NewPacket(payload, layers.LayerTypeIPv6, gopacket.Default)
	}
	return nil
}

func layerNames(pkt gopacket.Packet) string {
	names := make([]string, 0, len(pkt.Layers()))
	for _, layer := range pkt.Layers() {
		names = append(names, layer.LayerType().String())
	}
	return strings.Join(names, "/")
}
