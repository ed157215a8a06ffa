package wol

import (
	"context"
	"fmt"
	"io"
	"net"
	"time"
)

// defaultSendTimeout bounds the write when the context has no deadline.
const defaultSendTimeout = 5 * time.Second

// Sender transmits a magic packet to a physical address.
type Sender interface {
	Send(ctx context.Context, physicalAddress string) error
}

// UDPSender broadcasts magic packets over UDP/IPv4.
type UDPSender struct {
	broadcast string
}

// NewUDPSender creates a sender targeting cfg.BroadcastAddress.
func NewUDPSender(cfg Config) *UDPSender {
	addr := cfg.BroadcastAddress
	if addr == "" {
		addr = fmt.Sprintf("255.255.255.255:%d", DefaultPort)
	}
	return &UDPSender{broadcast: addr}
}

// Send writes one magic packet for physicalAddress. It does not retry.
func (s *UDPSender) Send(ctx context.Context, physicalAddress string) error {
	mac, err := ParseMAC(physicalAddress)
	if err != nil {
		return err
	}
	packet, err := NewMagicPacket(mac)
	if err != nil {
		return err
	}

	raddr, err := net.ResolveUDPAddr("udp4", s.broadcast)
	if err != nil {
		return fmt.Errorf("resolve broadcast address %q: %w", s.broadcast, err)
	}

	lc := net.ListenConfig{Control: enableBroadcast}
	pc, err := lc.ListenPacket(ctx, "udp4", ":0")
	if err != nil {
		return fmt.Errorf("open udp socket: %w", err)
	}
	defer pc.Close()

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(defaultSendTimeout)
	}
	if err := pc.SetWriteDeadline(deadline); err != nil {
		return fmt.Errorf("set write deadline: %w", err)
	}

	n, err := pc.WriteTo(packet, raddr)
	if err != nil {
		return fmt.Errorf("send magic packet to %s: %w", raddr, err)
	}
	if n != len(packet) {
		return fmt.Errorf("send magic packet to %s: %w", raddr, io.ErrShortWrite)
	}
	return nil
}
