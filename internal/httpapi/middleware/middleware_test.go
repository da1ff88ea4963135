package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/daltekdz/daltekdz_bot/internal/httpapi/httperr"
)

type stubAuthenticator map[string]string

func (s stubAuthenticator) Authenticate(token string) (string, error) {
	if subject, ok := s[token]; ok {
		return subject, nil
	}
	return "", errors.New("invalid token")
}

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(CustomRecovery(zap.NewNop()), ErrorHandler())
	return engine
}

func serve(engine *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuth(t *testing.T) {
	engine := newEngine()
	auth := NewAuthMiddleware(stubAuthenticator{"good": "admin"}, zap.NewNop())
	engine.GET("/private", auth.RequireAuth(), func(c *gin.Context) {
		subject, _ := GetSubject(c)
		c.String(http.StatusOK, subject)
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "no header", header: "", wantStatus: http.StatusUnauthorized, wantBody: "Access token required"},
		{name: "wrong scheme", header: "Basic good", wantStatus: http.StatusUnauthorized, wantBody: "Access token required"},
		{name: "invalid token", header: "Bearer bad", wantStatus: http.StatusUnauthorized, wantBody: "Invalid or expired token"},
		{name: "valid token", header: "Bearer good", wantStatus: http.StatusOK, wantBody: "admin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := serve(engine, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestIPRateLimiter(t *testing.T) {
	limiter := NewIPRateLimiter(3)

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow("10.0.0.1"), "request %d", i+1)
	}
	assert.False(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.2"), "other IP has its own bucket")
}

func TestIPRateLimiter_EvictsIdleVisitors(t *testing.T) {
	limiter := NewIPRateLimiter(2)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	for i := 0; i < 1000; i++ {
		limiter.Allow(fmt.Sprintf("10.0.%d.%d", i/256, i%256))
	}
	require.Equal(t, 1000, limiter.Len())

	// Один IP продолжает ходить, остальные простаивают
	now = now.Add(visitorTTL / 2)
	assert.True(t, limiter.Allow("10.0.0.1"))

	now = now.Add(visitorTTL/2 + time.Second)
	assert.True(t, limiter.Allow("192.0.2.7"))

	assert.Equal(t, 2, limiter.Len(), "only the recently active IP and the new one remain")
}

func TestIPRateLimiter_EvictionKeepsBudgetOfActiveIP(t *testing.T) {
	limiter := NewIPRateLimiter(1)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	require.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))

	now = now.Add(visitorTTL + time.Second)
	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))
}

func TestIPRateLimiter_Middleware(t *testing.T) {
	engine := newEngine()
	engine.POST("/login", NewIPRateLimiter(1).Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	rec := serve(engine, httptest.NewRequest(http.MethodPost, "/login", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(engine, httptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":{"message":"Too many requests"}}`, rec.Body.String())
}

func TestCustomRecovery(t *testing.T) {
	engine := newEngine()
	engine.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	rec := serve(engine, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":{"message":"Internal server error"}}`, rec.Body.String())
}

func TestErrorHandler(t *testing.T) {
	engine := newEngine()
	engine.GET("/private-error", func(c *gin.Context) {
		_ = c.Error(errors.New("db down"))
	})
	engine.GET("/public-error", func(c *gin.Context) {
		_ = c.Error(&gin.Error{
			Err:  errors.New("conflict"),
			Type: gin.ErrorTypePublic,
			Meta: httperr.New(http.StatusConflict, "Already exists"),
		})
	})

	rec := serve(engine, httptest.NewRequest(http.MethodGet, "/private-error", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":{"message":"Internal server error"}}`, rec.Body.String())

	rec = serve(engine, httptest.NewRequest(http.MethodGet, "/public-error", nil))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":{"message":"Already exists"}}`, rec.Body.String())
}

func TestLoggingMiddleware_SetsRequestID(t *testing.T) {
	engine := newEngine()
	engine.Use(LoggingMiddleware(zap.NewNop()))
	var requestID string
	engine.GET("/ping", func(c *gin.Context) {
		requestID = GetRequestID(c)
		c.Status(http.StatusOK)
	})

	rec := serve(engine, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, requestID, 36)
}
