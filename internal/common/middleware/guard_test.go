package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"turnaicash-admin/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRouteGuard(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		hasToken     bool
		wantStatus   int
		wantLocation string
	}{
		{name: "anonymous on login page", path: "/login", wantStatus: http.StatusOK},
		{name: "anonymous on root", path: "/", wantStatus: http.StatusOK},
		{name: "anonymous on dashboard", path: "/dashboard", wantStatus: http.StatusFound, wantLocation: "/login"},
		{name: "anonymous on nested page", path: "/dashboard/transactions", wantStatus: http.StatusFound, wantLocation: "/login"},
		{name: "authenticated on login page", path: "/login", hasToken: true, wantStatus: http.StatusFound, wantLocation: "/dashboard"},
		{name: "authenticated on dashboard", path: "/dashboard", hasToken: true, wantStatus: http.StatusOK},
		{name: "api bypasses guard without token", path: "/api/v1/platforms", wantStatus: http.StatusOK},
		{name: "static bypasses guard without token", path: "/static/app.js", wantStatus: http.StatusOK},
		{name: "favicon bypasses guard without token", path: "/favicon.ico", wantStatus: http.StatusOK},
		{name: "health bypasses guard without token", path: "/health", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RouteGuard())
			router.GET("/*any", func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.hasToken {
				req.AddCookie(&http.Cookie{Name: session.CookieAccessToken, Value: "tok"})
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
		})
	}
}
