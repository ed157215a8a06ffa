// Package wol builds and transmits Wake-on-LAN magic packets.
//
// A magic packet is six 0xFF bytes followed by sixteen repetitions of the
// target's six-byte hardware address, 102 bytes in total. It is sent as a
// single UDP datagram to a broadcast address (255.255.255.255:9 by default).
//
// # Sender Interface
//
// Handlers depend on the Sender interface rather than on UDPSender, so tests can
// inject a stub (see core/wol/mocks) that succeeds or fails on demand.
//
// # Usage
//
//	sender := wol.NewUDPSender(cfg.Wol)
//	if err := sender.Send(ctx, "aa:bb:cc:dd:ee:ff"); err != nil {
//	    // report the failure to the client
//	}
package wol
