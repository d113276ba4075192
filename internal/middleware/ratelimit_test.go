package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	pkgLog "assistant-tools/pkg/log"

	"github.com/gin-gonic/gin"
)

func newTestEngine(requestsPerMin int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := New(pkgLog.NewNop(), requestsPerMin)

	r := gin.New()
	r.Use(mw.RateLimit())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r
}

func hit(r *gin.Engine, remoteAddr string) int {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name           string
		requestsPerMin int
		requests       int
		wantLast       int
	}{
		{name: "Disabled", requestsPerMin: 0, requests: 50, wantLast: http.StatusNoContent},
		{name: "Within burst", requestsPerMin: 60, requests: 6, wantLast: http.StatusNoContent},
		{name: "Burst exceeded", requestsPerMin: 60, requests: 7, wantLast: http.StatusTooManyRequests},
		{name: "Minimum burst of one", requestsPerMin: 1, requests: 2, wantLast: http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestEngine(tt.requestsPerMin)
			var code int
			for i := 0; i < tt.requests; i++ {
				code = hit(r, "10.0.0.1:1234")
			}
			if code != tt.wantLast {
				t.Errorf("last status = %d, want %d", code, tt.wantLast)
			}
		})
	}
}

func TestRateLimitPerClient(t *testing.T) {
	r := newTestEngine(10)

	if code := hit(r, "10.0.0.1:1"); code != http.StatusNoContent {
		t.Fatalf("first client first request = %d", code)
	}
	if code := hit(r, "10.0.0.1:2"); code != http.StatusTooManyRequests {
		t.Errorf("first client second request = %d, want 429", code)
	}
	if code := hit(r, "10.0.0.2:1"); code != http.StatusNoContent {
		t.Errorf("second client = %d, want 204", code)
	}
}
