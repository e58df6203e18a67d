package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/mshahid/portfolio-server/pkg/configs"
	"github.com/mshahid/portfolio-server/pkg/middleware"
)

// newAuthRouter 挂载认证中间件与一个探针路由.
func newAuthRouter(conf configs.AuthConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(middleware.AuthMiddleware(conf))
	r.GET("/api/v1/admin/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/api/v1/health/db", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	return r
}

// TestAuthMiddleware 测试密钥匹配、缺失与错误的行为.
func TestAuthMiddleware(t *testing.T) {
	conf := configs.AuthConfig{AdminPassword: "s3cret", HeaderName: "password"}
	r := newAuthRouter(conf)

	cases := []struct {
		name     string
		password string
		want     int
	}{
		{"valid", "s3cret", http.StatusOK},
		{"wrong", "guess", http.StatusUnauthorized},
		{"missing", "", http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/ping", nil)
			if tc.password != "" {
				req.Header.Set("password", tc.password)
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.want {
				t.Errorf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}
}

// TestAuthMiddlewareSkipPaths 测试跳过前缀不做认证.
func TestAuthMiddlewareSkipPaths(t *testing.T) {
	conf := configs.AuthConfig{
		AdminPassword: "s3cret",
		SkipPaths:     []string{"/api/v1/health"},
	}
	r := newAuthRouter(conf)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health/db", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected skip path to pass, got %d", w.Code)
	}
}

// TestAuthMiddlewareDefaultHeader 测试未配置请求头名时回退到 password.
func TestAuthMiddlewareDefaultHeader(t *testing.T) {
	conf := configs.AuthConfig{AdminPassword: "s3cret"}
	r := newAuthRouter(conf)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/ping", nil)
	req.Header.Set("password", "s3cret")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected default header to authenticate, got %d", w.Code)
	}
}
