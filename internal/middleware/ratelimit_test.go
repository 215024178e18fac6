package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRateLimitExceededResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/blogs", nil)

	rateLimitExceeded(c)

	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", w.Code)
	}
	if !c.IsAborted() {
		t.Error("request was not aborted")
	}
	body := w.Body.String()
	if !strings.Contains(body, "RATE_001") {
		t.Errorf("body = %s, want the throttling error code", body)
	}
	if strings.Contains(body, "VAL_001") {
		t.Error("throttling response carries the validation error code")
	}
}

func TestDisabledLimiterPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(NewRateLimiter(nil, 0, 0).Limit())
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 with limiting disabled", w.Code)
	}
}
