package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"lexigrain_schedule/internal/config"

	"github.com/gin-gonic/gin"
)

func newRouter(apiToken string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	cfg.Server.APIToken = apiToken

	router := gin.New()
	router.Use(APITokenMiddleware(cfg))
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return router
}

func get(router *gin.Engine, header, query string) int {
	req := httptest.NewRequest(http.MethodGet, "/ping"+query, nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w.Code
}

func TestAPITokenDisabledWhenEmpty(t *testing.T) {
	t.Parallel()
	router := newRouter("")
	if code := get(router, "", ""); code != http.StatusOK {
		t.Fatalf("status = %d, want 200 when token auth disabled", code)
	}
}

func TestAPITokenRequired(t *testing.T) {
	t.Parallel()
	router := newRouter("secret")

	if code := get(router, "", ""); code != http.StatusUnauthorized {
		t.Fatalf("no token: status = %d, want 401", code)
	}
	if code := get(router, "Bearer wrong", ""); code != http.StatusUnauthorized {
		t.Fatalf("wrong token: status = %d, want 401", code)
	}
	if code := get(router, "Bearer secret", ""); code != http.StatusOK {
		t.Fatalf("bearer token: status = %d, want 200", code)
	}
	if code := get(router, "", "?token=secret"); code != http.StatusOK {
		t.Fatalf("query token: status = %d, want 200", code)
	}
}
