package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"comandas-be/internal/logger"
	"comandas-be/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw...)
	r.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.DELETE("/test", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	return r
}

func do(r http.Handler, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiter(t *testing.T) {
	t.Run("Blocks over burst", func(t *testing.T) {
		r := newRouter(NewRateLimiter(1, 2).Middleware())

		assert.Equal(t, http.StatusOK, do(r, "GET", "/test", nil).Code)
		assert.Equal(t, http.StatusOK, do(r, "GET", "/test", nil).Code)
		w := do(r, "GET", "/test", nil)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Contains(t, w.Body.String(), "Too Many Requests")
	})

	t.Run("Separate quota per device", func(t *testing.T) {
		r := newRouter(NewRateLimiter(1, 1).Middleware())

		assert.Equal(t, http.StatusOK, do(r, "GET", "/test", map[string]string{"X-Device-ID": "a"}).Code)
		assert.Equal(t, http.StatusOK, do(r, "GET", "/test", map[string]string{"X-Device-ID": "b"}).Code)
		assert.Equal(t, http.StatusTooManyRequests, do(r, "GET", "/test", map[string]string{"X-Device-ID": "a"}).Code)
	})

	t.Run("Delete uses strict tier", func(t *testing.T) {
		r := newRouter(NewRateLimiter(10, 10).Middleware())

		assert.Equal(t, http.StatusNoContent, do(r, "DELETE", "/test", nil).Code)
		assert.Equal(t, http.StatusNoContent, do(r, "DELETE", "/test", nil).Code)
		assert.Equal(t, http.StatusTooManyRequests, do(r, "DELETE", "/test", nil).Code)

		// general quota is untouched
		assert.Equal(t, http.StatusOK, do(r, "GET", "/test", nil).Code)
	})

	t.Run("Sweep removes stale visitors", func(t *testing.T) {
		rl := NewRateLimiter(1, 1)
		now := time.Now()
		rl.now = func() time.Time { return now }

		rl.getVisitor("ip:1:general", 1, 1)
		now = now.Add(visitorTTL + time.Second)
		rl.getVisitor("ip:2:general", 1, 1)

		assert.Equal(t, 1, rl.sweep())
		assert.Len(t, rl.visitors, 1)
	})
}

func TestMetrics(t *testing.T) {
	r := newRouter(Metrics())

	before := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/test", "200"))
	do(r, "GET", "/test", nil)
	after := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/test", "200"))

	assert.Equal(t, before+1, after)

	unmatchedBefore := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404"))
	do(r, "GET", "/nope/123", nil)
	assert.Equal(t, unmatchedBefore+1, testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404")))
}

func TestRecovery(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	logger.Set(zap.New(core))
	defer logger.Set(nil)

	r := newRouter(Recovery())
	w := do(r, "GET", "/panic", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, w.Body.String())
	assert.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
}
