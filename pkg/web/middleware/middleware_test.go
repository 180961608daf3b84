package middleware_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"mini-blog/pkg/common/config"
	"mini-blog/pkg/web/middleware"
)

const testBodyLimit = 16

func newEngine(env string) *server.Hertz {
	cfg := config.New()
	cfg.Env = env

	h := server.New()
	h.Use(
		middleware.RecoveryMiddleware(cfg),
		middleware.BodyLimitMiddleware(testBodyLimit),
	)
	h.GET("/panic", func(ctx context.Context, c *app.RequestContext) {
		panic("kaboom")
	})
	h.POST("/echo", func(ctx context.Context, c *app.RequestContext) {
		c.JSON(200, map[string]string{"ok": "yes"})
	})
	h.NoRoute(middleware.NotFoundHandler())
	return h
}

func perform(h *server.Hertz, method, path, body string) *ut.ResponseRecorder {
	var b *ut.Body
	if body != "" {
		b = &ut.Body{Body: bytes.NewBufferString(body), Len: len(body)}
	}
	return ut.PerformRequest(h.Engine, method, path, b,
		ut.Header{Key: "Content-Type", Value: "application/json"})
}

func decodeBody(t *testing.T, w *ut.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Result().Body(), &body); err != nil {
		t.Fatalf("decode %s: %v", w.Result().Body(), err)
	}
	return body
}

func TestRecoveryMiddleware(t *testing.T) {
	t.Run("production hides details", func(t *testing.T) {
		w := perform(newEngine("production"), "GET", "/panic", "")
		if got := w.Result().StatusCode(); got != 500 {
			t.Fatalf("Expected 500, got %d", got)
		}
		body := decodeBody(t, w)
		if body["message"] != "Internal server error" {
			t.Errorf("unexpected message %v", body["message"])
		}
		if len(body) != 1 {
			t.Errorf("Expected only a message field, got %v", body)
		}
	})

	t.Run("development adds error and stack", func(t *testing.T) {
		w := perform(newEngine("development"), "GET", "/panic", "")
		if got := w.Result().StatusCode(); got != 500 {
			t.Fatalf("Expected 500, got %d", got)
		}
		body := decodeBody(t, w)
		if body["message"] != "Internal server error" || body["error"] != "kaboom" {
			t.Errorf("unexpected body %v", body)
		}
		stack, ok := body["stack"].([]interface{})
		if !ok || len(stack) == 0 {
			t.Errorf("Expected a non-empty stack, got %v", body["stack"])
		}
	})
}

func TestBodyLimitMiddleware(t *testing.T) {
	h := newEngine("production")

	w := perform(h, "POST", "/echo", strings.Repeat("x", testBodyLimit+1))
	if got := w.Result().StatusCode(); got != 413 {
		t.Fatalf("Expected 413, got %d", got)
	}
	if body := decodeBody(t, w); body["message"] != "Request body too large" {
		t.Errorf("unexpected message %v", body["message"])
	}

	w = perform(h, "POST", "/echo", strings.Repeat("x", testBodyLimit))
	if got := w.Result().StatusCode(); got != 200 {
		t.Fatalf("Expected 200 at the limit, got %d", got)
	}
}

func TestNotFoundHandler(t *testing.T) {
	w := perform(newEngine("production"), "GET", "/missing", "")
	if got := w.Result().StatusCode(); got != 404 {
		t.Fatalf("Expected 404, got %d", got)
	}
	if body := decodeBody(t, w); body["message"] != "Route not found" {
		t.Errorf("unexpected message %v", body["message"])
	}
}
