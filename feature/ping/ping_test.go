package ping_test

import (
	"context"
	"testing"

	"remote-controller/core/request"
	"remote-controller/core/response"
	"remote-controller/core/router"
	"remote-controller/feature/ping"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPing(t *testing.T) {
	r := router.New()
	f := ping.NewFeature()
	assert.Equal(t, "ping", f.Name())
	assert.True(t, f.IsEnabled())
	require.NoError(t, f.Load(r))

	tests := []struct {
		name    string
		headers request.Headers
	}{
		{"NoHeaders", request.Headers{}},
		{"WithHeaders", request.Headers{"Host": "example.com", "X-Test": "2"}},
		{"NilHeaders", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &request.Request{Method: request.MethodGet, Path: "/ping", Version: "HTTP/1.1", Headers: tt.headers}
			assert.Equal(t, response.OK("pong"), r.Dispatch(context.Background(), req))
		})
	}
}

func TestPing_PostIsNotFound(t *testing.T) {
	r := router.New()
	require.NoError(t, ping.NewFeature().Load(r))

	resp := r.Dispatch(context.Background(), &request.Request{Method: request.MethodPost, Path: "/ping"})
	assert.Equal(t, response.NotFound(), resp)
}
