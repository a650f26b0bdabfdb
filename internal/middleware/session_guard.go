package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mondaynail/salon-api/internal/config"
	"github.com/mondaynail/salon-api/internal/httperr"
	"github.com/mondaynail/salon-api/internal/session"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

// SessionGuard protects the role-scoped page sections. It is stateless: the
// decision is allow or redirect, nothing else. Unauthenticated requests are
// sent to the login page with the original path preserved in "from".
func SessionGuard(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		role, protected := requiredRoleFor(path)
		if !protected {
			c.Next()
			return
		}

		if _, ok := session.FromCookie(c, cfg.Session.JWTSecret, role); !ok {
			redirectToLogin(c, path)
			return
		}

		c.Next()
	}
}

// requiredRoleFor applies the guard rule table: the admin section needs an
// admin session, the employee section an employee one. The login sub-paths
// and the API prefix are exempt; everything else passes through.
func requiredRoleFor(path string) (string, bool) {
	if strings.HasPrefix(path, "/api/") {
		return "", false
	}

	if strings.HasPrefix(path, "/admin") && !strings.HasPrefix(path, "/admin/login") {
		return session.RoleAdmin, true
	}

	if strings.HasPrefix(path, "/employee") && !strings.HasPrefix(path, "/employee/login") {
		return session.RoleEmployee, true
	}

	return "", false
}

func redirectToLogin(c *gin.Context, from string) {
	target := "/login?from=" + url.QueryEscape(from)
	c.Redirect(http.StatusFound, target)
	c.Abort()
}

// RequireRole is the JSON variant used on API groups: a missing or
// wrong-role session yields 401 instead of a redirect. On success the
// identity is exposed on the request context.
func RequireRole(cfg *config.Config, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, role := range roles {
			claims, ok := session.FromCookie(c, cfg.Session.JWTSecret, role)
			if !ok {
				continue
			}

			userID, err := claims.UserID()
			if err != nil {
				continue
			}

			c.Set(ContextUserID, userID)
			c.Set(ContextUserRole, claims.Role)
			c.Next()
			return
		}

		httperr.Unauthorized(c, "unauthorized", "Authentication required.")
		c.Abort()
	}
}
