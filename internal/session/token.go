package session

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mondaynail/salon-api/internal/httperr"
)

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// Claims is the typed session token carried in the role cookie. The token is
// self-contained: logout only clears the cookie, and a copied token stays
// valid until it expires. There is no server-side revocation list.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// UserID returns the subject as the numeric credential-store id.
func (c *Claims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 32)
	if err != nil {
		return 0, httperr.ErrBusiness("invalid_session")
	}
	return uint(id), nil
}

// Issue signs a session token for the given role and subject id.
func Issue(secret string, role string, userID uint, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// Parse validates the signature and expiry and returns the claims. The
// embedded identity is trusted as-is; there is no per-request lookup against
// the credential store.
func Parse(secret string, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(secret), nil
		},
	)
	if err != nil || !token.Valid {
		return nil, httperr.ErrBusiness("invalid_session")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || (claims.Role != RoleAdmin && claims.Role != RoleEmployee) {
		return nil, httperr.ErrBusiness("invalid_session")
	}

	return claims, nil
}
