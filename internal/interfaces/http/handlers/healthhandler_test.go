package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/orris-inc/helpdesk/internal/interfaces/http/handlers/testutil"
)

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name     string
		ping     PingFunc
		wantCode int
	}{
		{"no ping", nil, http.StatusOK},
		{"reachable", func(context.Context) error { return nil }, http.StatusOK},
		{"unreachable", func(context.Context) error { return assert.AnError }, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler("local", tt.ping, testutil.NewMockLogger())
			c, w := testutil.NewTestContext(http.MethodGet, "/health", nil)

			h.HealthCheck(c)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), `"backend":"local"`)
		})
	}
}
