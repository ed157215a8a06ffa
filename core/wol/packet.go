package wol

import (
	"encoding/hex"
	"fmt"
	"net"
	"strings"
)

const (
	// DefaultPort is the standard Wake-on-LAN UDP port.
	DefaultPort = 9
	// MagicPacketSize is 6 sync bytes plus 16 repetitions of a 6-byte MAC.
	MagicPacketSize = 6 + 16*6

	macLength = 6
)

// ParseMAC parses exactly six colon-separated hex octets, e.g. "aa:bb:cc:dd:ee:ff".
// Other notations accepted by net.ParseMAC (dashes, dots, EUI-64) are rejected.
func ParseMAC(s string) (net.HardwareAddr, error) {
	octets := strings.Split(s, ":")
	if len(octets) != macLength {
		return nil, fmt.Errorf("invalid physical address %q: want %d colon-separated octets", s, macLength)
	}

	mac := make(net.HardwareAddr, 0, macLength)
	for _, o := range octets {
		if len(o) != 2 {
			return nil, fmt.Errorf("invalid physical address %q: octet %q is not two hex digits", s, o)
		}
		b, err := hex.DecodeString(o)
		if err != nil {
			return nil, fmt.Errorf("invalid physical address %q: %w", s, err)
		}
		mac = append(mac, b[0])
	}
	return mac, nil
}

// NewMagicPacket returns the magic packet payload for mac.
func NewMagicPacket(mac net.HardwareAddr) ([]byte, error) {
	if len(mac) != macLength {
		return nil, fmt.Errorf("invalid hardware address length %d", len(mac))
	}

	packet := make([]byte, 0, MagicPacketSize)
	for i := 0; i < 6; i++ {
		packet = append(packet, 0xFF)
	}
	for i := 0; i < 16; i++ {
		packet = append(packet, mac...)
	}
	return packet, nil
}
