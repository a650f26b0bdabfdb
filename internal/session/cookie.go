package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	AdminCookie    = "admin_session"
	EmployeeCookie = "employee_session"
)

// CookieName maps a role to its session cookie.
func CookieName(role string) string {
	if role == RoleAdmin {
		return AdminCookie
	}
	return EmployeeCookie
}

// SetCookie stores a session token as an HTTP-only, SameSite=Lax cookie on
// the whole site.
func SetCookie(c *gin.Context, role string, token string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     CookieName(role),
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookies expires both role cookies immediately.
func ClearCookies(c *gin.Context) {
	for _, name := range []string{AdminCookie, EmployeeCookie} {
		http.SetCookie(c.Writer, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
}

// FromCookie reads and validates the session for a role; ok is false when the
// cookie is absent or the token does not verify for that role.
func FromCookie(c *gin.Context, secret string, role string) (*Claims, bool) {
	raw, err := c.Cookie(CookieName(role))
	if err != nil || raw == "" {
		return nil, false
	}

	claims, err := Parse(secret, raw)
	if err != nil || claims.Role != role {
		return nil, false
	}
	return claims, true
}
