package wol_test

import (
	"bytes"
	"net"
	"testing"

	"remote-controller/core/wol"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMAC(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    net.HardwareAddr
		wantErr bool
	}{
		{"Lowercase", "aa:bb:cc:dd:ee:ff", net.HardwareAddr{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}, false},
		{"Uppercase", "01:23:45:67:89:AB", net.HardwareAddr{0x01, 0x23, 0x45, 0x67, 0x89, 0xab}, false},
		{"Dashes", "aa-bb-cc-dd-ee-ff", nil, true},
		{"TooShort", "aa:bb:cc:dd:ee", nil, true},
		{"TooLong", "aa:bb:cc:dd:ee:ff:00", nil, true},
		{"SingleDigitOctet", "a:bb:cc:dd:ee:ff", nil, true},
		{"NotHex", "zz:bb:cc:dd:ee:ff", nil, true},
		{"Empty", "", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mac, err := wol.ParseMAC(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, mac)
		})
	}
}

func TestNewMagicPacket(t *testing.T) {
	mac := net.HardwareAddr{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}

	packet, err := wol.NewMagicPacket(mac)
	require.NoError(t, err)
	require.Len(t, packet, wol.MagicPacketSize)

	assert.Equal(t, bytes.Repeat([]byte{0xFF}, 6), packet[:6])
	for i := 0; i < 16; i++ {
		offset := 6 + i*6
		assert.Equal(t, []byte(mac), packet[offset:offset+6], "repetition %d", i)
	}
}

func TestNewMagicPacket_BadLength(t *testing.T) {
	_, err := wol.NewMagicPacket(net.HardwareAddr{0x01, 0x02})
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     wol.Config
		wantErr bool
	}{
		{"Valid", wol.Config{PhysicalAddress: "aa:bb:cc:dd:ee:ff", BroadcastAddress: "255.255.255.255:9"}, false},
		{"MissingAddress", wol.Config{BroadcastAddress: "255.255.255.255:9"}, true},
		{"BadAddress", wol.Config{PhysicalAddress: "nope", BroadcastAddress: "255.255.255.255:9"}, true},
		{"MissingBroadcast", wol.Config{PhysicalAddress: "aa:bb:cc:dd:ee:ff"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
