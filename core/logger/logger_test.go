package logger_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"remote-controller/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     logger.Config
		wantErr bool
	}{
		{"DebugConsole", logger.Config{Level: "debug", Format: "console"}, false},
		{"InfoJSON", logger.Config{Level: "info", Format: "json"}, false},
		{"Defaults", logger.Config{}, false},
		{"BadLevel", logger.Config{Level: "loud"}, true},
		{"BadFormat", logger.Config{Level: "info", Format: "xml"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := logger.New(&tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, l)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, l)
		})
	}
}

func TestNew_LevelIsApplied(t *testing.T) {
	l, err := logger.New(&logger.Config{Level: "warn", Format: "json"})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
}

func TestWithConnection(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := logger.WithConnection(zap.New(core), "abc", "10.0.0.2:5555")

	l.Info("hello")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "abc", fields["conn_id"])
	assert.Equal(t, "10.0.0.2:5555", fields["remote"])
}

func TestWithRayID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	app := fiber.New()
	app.Get("/with", func(c *fiber.Ctx) error {
		c.Locals("ray_id", "ray-1")
		logger.WithRayID(base, c).Info("with")
		return nil
	})
	app.Get("/without", func(c *fiber.Ctx) error {
		logger.WithRayID(base, c).Info("without")
		return nil
	})

	_, err := app.Test(httptest.NewRequest("GET", "/with", nil))
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest("GET", "/without", nil))
	require.NoError(t, err)

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "ray-1", logs.All()[0].ContextMap()["ray_id"])
	assert.NotContains(t, logs.All()[1].ContextMap(), "ray_id")
}

func TestContext(t *testing.T) {
	fallback := zap.NewNop()
	assert.Same(t, fallback, logger.FromContext(context.Background(), fallback))

	l := zap.NewExample()
	ctx := logger.IntoContext(context.Background(), l)
	assert.Same(t, l, logger.FromContext(ctx, fallback))
}
