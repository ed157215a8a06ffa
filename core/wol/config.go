package wol

import "fmt"

// Config holds configuration for magic packet transmission.
type Config struct {
	// PhysicalAddress is the MAC address of the machine to wake, e.g. aa:bb:cc:dd:ee:ff.
	PhysicalAddress string `mapstructure:"physical_address" default:""`
	// BroadcastAddress is the host:port the packet is sent to.
	BroadcastAddress string `mapstructure:"broadcast_address" default:"255.255.255.255:9"`
}

// Validate checks that the physical address is well formed.
func (c Config) Validate() error {
	if c.PhysicalAddress == "" {
		return fmt.Errorf("wol.physical_address is required")
	}
	if _, err := ParseMAC(c.PhysicalAddress); err != nil {
		return err
	}
	if c.BroadcastAddress == "" {
		return fmt.Errorf("wol.broadcast_address is required")
	}
	return nil
}
