package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"remote-controller/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalYAML = `
server:
  listen_address: "0.0.0.0:8080"
wol:
  physical_address: "aa:bb:cc:dd:ee:ff"
`

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "config.yaml", minimalYAML))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.ListenAddress)
	assert.Equal(t, "aa:bb:cc:dd:ee:ff", cfg.Wol.PhysicalAddress)

	assert.Equal(t, 30, cfg.Server.ReadTimeoutSeconds)
	assert.Equal(t, 30, cfg.Server.WriteTimeoutSeconds)
	assert.Equal(t, 0, cfg.Server.MaxConnections)
	assert.Equal(t, 8192, cfg.Server.MaxLineBytes)
	assert.Equal(t, 100, cfg.Server.MaxHeaders)
	assert.Equal(t, "255.255.255.255:9", cfg.Wol.BroadcastAddress)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.False(t, cfg.Database.Enabled())
	assert.Equal(t, 100, cfg.Audit.MemorySize)
	assert.False(t, cfg.Admin.Enabled)
	assert.Equal(t, ":8081", cfg.Admin.ListenAddress)
	assert.Equal(t, 10, cfg.Client.TimeoutSeconds)
}

func TestLoad_FullFile(t *testing.T) {
	yaml := `
server:
  listen_address: "127.0.0.1:9000"
  read_timeout_seconds: 5
  max_connections: 16
wol:
  physical_address: "01:23:45:67:89:ab"
  broadcast_address: "192.168.1.255:9"
log:
  level: debug
  format: json
database:
  driver: sqlite
  name: /var/lib/remote-controller/audit.db
admin:
  enabled: true
  listen_address: "127.0.0.1:9001"
client:
  server_address: "pi.local:9000"
`
	cfg, err := config.Load(writeConfig(t, "config.yaml", yaml))
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Server.ReadTimeoutSeconds)
	assert.Equal(t, 16, cfg.Server.MaxConnections)
	assert.Equal(t, "192.168.1.255:9", cfg.Wol.BroadcastAddress)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.True(t, cfg.Admin.Enabled)
	assert.Equal(t, "pi.local:9000", cfg.ClientAddress())
}

func TestLoad_JSON(t *testing.T) {
	json := `{"server": {"listen_address": ":8080"}, "wol": {"physical_address": "aa:bb:cc:dd:ee:ff"}}`
	cfg, err := config.Load(writeConfig(t, "config.json", json))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.ListenAddress)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("WOL_PHYSICAL_ADDRESS", "11:22:33:44:55:66")
	t.Setenv("SERVER_MAX_CONNECTIONS", "4")

	cfg, err := config.Load(writeConfig(t, "config.yaml", minimalYAML))
	require.NoError(t, err)
	assert.Equal(t, "11:22:33:44:55:66", cfg.Wol.PhysicalAddress)
	assert.Equal(t, 4, cfg.Server.MaxConnections)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr string
	}{
		{"EmptyPath", func(t *testing.T) string { return "" }, "config file path is required"},
		{"Missing", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yaml") }, "failed to read config file"},
		{"Malformed", func(t *testing.T) string { return writeConfig(t, "config.yaml", "server: [unterminated") }, "failed to read config file"},
		{"NoListenAddress", func(t *testing.T) string {
			return writeConfig(t, "config.yaml", "wol:\n  physical_address: \"aa:bb:cc:dd:ee:ff\"\n")
		}, "server.listen_address is required"},
		{"NoPhysicalAddress", func(t *testing.T) string {
			return writeConfig(t, "config.yaml", "server:\n  listen_address: \":8080\"\n")
		}, "wol.physical_address is required"},
		{"BadPhysicalAddress", func(t *testing.T) string {
			return writeConfig(t, "config.yaml", "server:\n  listen_address: \":8080\"\nwol:\n  physical_address: \"aa-bb-cc-dd-ee-ff\"\n")
		}, "invalid physical address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.Load(tt.path(t))
			assert.Nil(t, cfg)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestClientAddress(t *testing.T) {
	tests := []struct {
		listen string
		want   string
	}{
		{"0.0.0.0:8080", "127.0.0.1:8080"},
		{":8080", "127.0.0.1:8080"},
		{"[::]:8080", "127.0.0.1:8080"},
		{"192.168.1.10:8080", "192.168.1.10:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.listen, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Server.ListenAddress = tt.listen
			assert.Equal(t, tt.want, cfg.ClientAddress())
		})
	}
}
