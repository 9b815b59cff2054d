package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"turnaicash-admin/internal/session"
)

// RouteGuard enforces the page-level access policy:
//
//	no token  + /login or /   -> allow
//	no token  + anything else -> redirect to /login
//	token     + /login        -> redirect to /dashboard
//	token     + anything else -> allow
//
// API routes, static assets, the favicon and the health endpoint bypass the
// guard entirely. Only the access-token cookie is consulted; validity is not
// checked here.
func RouteGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		if strings.HasPrefix(path, "/api") || strings.HasPrefix(path, "/static") || path == "/favicon.ico" || path == "/health" {
			c.Next()
			return
		}

		token, _ := c.Cookie(session.CookieAccessToken)
		isLogin := strings.HasPrefix(path, "/login")
		isPublic := path == "/"

		if token == "" && !isLogin && !isPublic {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		if token != "" && isLogin {
			c.Redirect(http.StatusFound, "/dashboard")
			c.Abort()
			return
		}

		c.Next()
	}
}
