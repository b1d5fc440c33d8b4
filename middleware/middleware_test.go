package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

var errDenied = errors.New("denied")

type tokenAuth struct {
	valid string
	err   error
}

func (a tokenAuth) Authenticate(_ context.Context, token string) error {
	if a.err != nil {
		return a.err
	}
	if token != a.valid {
		return errDenied
	}
	return nil
}

func isDenied(err error) bool { return errors.Is(err, errDenied) }

func newRouter(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func do(r http.Handler, header, value string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if header != "" {
		req.Header.Set(header, value)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminAuthMiddleware(t *testing.T) {
	r := newRouter(AdminAuthMiddleware(tokenAuth{valid: "good"}, isDenied))

	assert.Equal(t, http.StatusUnauthorized, do(r, "", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, "Authorization", "Basic abc").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, "Authorization", "Bearer bad").Code)
	assert.Equal(t, http.StatusOK, do(r, "Authorization", "Bearer good").Code)
}

func TestAdminAuthMiddlewareSessionStoreDown(t *testing.T) {
	r := newRouter(AdminAuthMiddleware(tokenAuth{err: errors.New("redis down")}, isDenied))
	assert.Equal(t, http.StatusServiceUnavailable, do(r, "Authorization", "Bearer good").Code)
}

func TestRateLimitMiddleware(t *testing.T) {
	r := newRouter(RateLimitMiddleware(60, 2))

	assert.Equal(t, http.StatusOK, do(r, "X-Forwarded-For", "10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, do(r, "X-Forwarded-For", "10.0.0.1").Code)
	assert.Equal(t, http.StatusTooManyRequests, do(r, "X-Forwarded-For", "10.0.0.1").Code)
	// Separate bucket per client.
	assert.Equal(t, http.StatusOK, do(r, "X-Forwarded-For", "10.0.0.2").Code)
}

func TestClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		header, value, remote, want string
	}{
		{"X-Forwarded-For", "203.0.113.9, 10.0.0.1", "127.0.0.1:5000", "203.0.113.9"},
		{"X-Real-IP", " 198.51.100.7 ", "127.0.0.1:5000", "198.51.100.7"},
		{"", "", "192.0.2.1:1234", "192.0.2.1"},
	}
	for _, tc := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request.RemoteAddr = tc.remote
		if tc.header != "" {
			c.Request.Header.Set(tc.header, tc.value)
		}
		assert.Equal(t, tc.want, ClientIP(c))
	}
}

func TestRequestLoggerSetsRequestID(t *testing.T) {
	r := newRouter(RequestLogger(zap.NewNop()))

	w := do(r, "X-Request-ID", "abc-123")
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))

	w = do(r, "", "")
	assert.Len(t, w.Header().Get("X-Request-ID"), 36)
}
