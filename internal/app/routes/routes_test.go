package routes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func performHealthCheck(t *testing.T, dbPing func(ctx context.Context) error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/health", healthHandler(dbPing))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)
	return w
}

func TestHealthHandlerDatabaseUp(t *testing.T) {
	w := performHealthCheck(t, func(ctx context.Context) error { return nil })

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Errorf("body = %s, want an ok status", w.Body.String())
	}
}

func TestHealthHandlerDatabaseDown(t *testing.T) {
	w := performHealthCheck(t, func(ctx context.Context) error {
		return errors.New("connection refused")
	})

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503 when the database ping fails", w.Code)
	}
	if !strings.Contains(w.Body.String(), "SRV_002") {
		t.Errorf("body = %s, want the database error code", w.Body.String())
	}
}

func TestHealthHandlerPassesDeadline(t *testing.T) {
	var sawDeadline bool
	performHealthCheck(t, func(ctx context.Context) error {
		_, sawDeadline = ctx.Deadline()
		return nil
	})
	if !sawDeadline {
		t.Error("ping context has no deadline")
	}
}
