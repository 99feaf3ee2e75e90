package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ju4700/Complete-The-Dictionary/internal/flash"
)

// OptionalAuth populates the request context from the session cookie when one
// is present and valid, but never blocks. Public pages use it to show login
// state.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenStr, err := c.Cookie(CookieName); err == nil {
			if claims, err := ParseToken(tokenStr); err == nil {
				c.Set("user_id", claims.UserID)
				c.Set("username", claims.Username)
				c.Set("user_role", claims.Role)
			}
		}
		c.Next()
	}
}

// RequireAuth rejects requests without a valid session cookie, redirecting to
// the login page.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(CookieName)
		if err != nil {
			flash.Set(c, "danger", "Please log in to access this page.")
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		claims, err := ParseToken(tokenStr)
		if err != nil {
			flash.Set(c, "danger", "Please log in to access this page.")
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("user_role", claims.Role)
		c.Next()
	}
}

// RequireAdmin gates a route on the admin role. It checks only the role:
// composing it after RequireAuth gives the full session-plus-role guard.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if role, ok := c.Get("user_role"); !ok || role != "admin" {
			flash.Set(c, "danger", "You do not have permission to access this page.")
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUserID returns the authenticated user's id. Only meaningful behind
// RequireAuth.
func CurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get("user_id"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// CurrentUsername returns the session's username, or "" when anonymous.
func CurrentUsername(c *gin.Context) string {
	if v, ok := c.Get("username"); ok {
		if name, ok := v.(string); ok {
			return name
		}
	}
	return ""
}
