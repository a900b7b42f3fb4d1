package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/helpdesk/internal/infrastructure/auth"
	"github.com/orris-inc/helpdesk/internal/shared/constants"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequireAuth(t *testing.T) {
	jwtSvc := auth.NewJWTService("test-secret", 60)
	token, err := jwtSvc.Generate(auth.Principal{ID: "user-1", Email: "a@example.com", DisplayName: "Ann"})
	require.NoError(t, err)

	engine := gin.New()
	engine.GET("/me", NewAuthMiddleware(jwtSvc, logger.NewNopLogger()).RequireAuth(), func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		require.True(t, ok)
		c.String(http.StatusOK, p.ID+"|"+p.AuthorName())
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "valid token", header: "Bearer " + token, wantStatus: http.StatusOK, wantBody: "user-1|Ann"},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer not-a-jwt", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	engine := gin.New()
	engine.Use(RequestID())
	engine.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(constants.ContextKeyRequestID))
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, "req-123", w.Body.String())
	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Len(t, w.Body.String(), 36)
}

func TestMetrics(t *testing.T) {
	engine := gin.New()
	engine.Use(Metrics())
	engine.GET("/api/tickets/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	engine.GET("/metrics", MetricsHandler())

	counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/tickets/:id", "204")
	before := testutil.ToFloat64(counter)

	for _, id := range []string{"T-1", "T-2"} {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tickets/"+id, nil))
		require.Equal(t, http.StatusNoContent, w.Code)
	}
	assert.Equal(t, before+2, testutil.ToFloat64(counter))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}

func TestCORS(t *testing.T) {
	engine := gin.New()
	engine.Use(CORS([]string{"http://localhost:5173"}))
	engine.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRecovery(t *testing.T) {
	engine := gin.New()
	engine.Use(Recovery(logger.NewNopLogger()))
	engine.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), constants.ErrMsgInternalServerError)
}
