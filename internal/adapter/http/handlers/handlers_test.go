package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"rebobinagem/internal/adapter/http/middleware"
	"rebobinagem/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

var (
	errTest = errors.New("boom")

	admin    = entities.Actor{ID: "u-admin", Role: entities.RoleAdmin}
	operator = entities.Actor{ID: "u-op", Role: entities.RoleOperator}
)

// newRouter returns a test engine that authenticates every request as actor. A nil actor
// leaves the request anonymous.
func newRouter(actor *entities.Actor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if actor != nil {
		a := *actor
		r.Use(func(c *gin.Context) {
			c.Set(middleware.ActorKey, a)
			c.Next()
		})
	}
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return body
}
