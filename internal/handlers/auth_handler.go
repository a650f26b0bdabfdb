package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/mondaynail/salon-api/internal/audit"
	"github.com/mondaynail/salon-api/internal/config"
	"github.com/mondaynail/salon-api/internal/httperr"
	"github.com/mondaynail/salon-api/internal/models"
	"github.com/mondaynail/salon-api/internal/ratelimit"
	"github.com/mondaynail/salon-api/internal/session"
)

type AuthHandler struct {
	db      *gorm.DB
	config  *config.Config
	log     *zap.Logger
	limiter *ratelimit.LoginLimiter
	audit   *audit.Dispatcher
}

func NewAuthHandler(
	db *gorm.DB,
	cfg *config.Config,
	log *zap.Logger,
	limiter *ratelimit.LoginLimiter,
	auditDispatcher *audit.Dispatcher,
) *AuthHandler {
	return &AuthHandler{
		db:      db,
		config:  cfg,
		log:     log,
		limiter: limiter,
		audit:   auditDispatcher,
	}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

// Login checks the admin table first, then employees; the first matching
// email wins. Unknown email and wrong password both come back as the same
// generic 401 so the response never reveals which one it was.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_credentials", "Email and password are required.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !h.limiter.Allow(c.Request.Context(), c.ClientIP(), email) {
		httperr.TooManyRequests(c, "too_many_attempts", "Too many login attempts. Try again later.")
		return
	}

	var admin models.Admin
	err := h.db.Where("email = ?", email).First(&admin).Error
	switch {
	case err == nil:
		if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)) != nil {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials.")
			return
		}
		h.finishLogin(c, session.RoleAdmin, admin.ID, "/admin")
		return
	case err != gorm.ErrRecordNotFound:
		h.log.Error("admin lookup failed", zap.String("op", "login"), zap.Error(err))
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	var employee models.Employee
	err = h.db.Where("email = ?", email).First(&employee).Error
	switch {
	case err == nil:
		if bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(req.Password)) != nil {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials.")
			return
		}
		h.finishLogin(c, session.RoleEmployee, employee.ID, "/employee")
		return
	case err != gorm.ErrRecordNotFound:
		h.log.Error("employee lookup failed", zap.String("op", "login"), zap.Error(err))
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials.")
}

func (h *AuthHandler) finishLogin(c *gin.Context, role string, userID uint, redirectTo string) {
	ttl := h.sessionTTL(role)

	token, err := session.Issue(h.config.Session.JWTSecret, role, userID, ttl)
	if err != nil {
		h.log.Error("session issue failed", zap.String("role", role), zap.Error(err))
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	session.SetCookie(c, role, token, int(ttl.Seconds()))

	h.audit.Dispatch(audit.Event{
		UserRole: role,
		UserID:   &userID,
		Action:   "login",
		Entity:   role,
	})

	c.JSON(http.StatusOK, gin.H{
		"ok":         true,
		"role":       role,
		"redirectTo": redirectTo,
	})
}

func (h *AuthHandler) sessionTTL(role string) time.Duration {
	hours := h.config.Session.EmployeeTTLHours
	if role == session.RoleAdmin {
		hours = h.config.Session.AdminTTLHours
	}
	return time.Duration(hours) * time.Hour
}

// Logout clears both role cookies. The token itself stays valid until its
// expiry; there is no server-side revocation list.
func (h *AuthHandler) Logout(c *gin.Context) {
	session.ClearCookies(c)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Check parses whichever session cookie is present without touching the
// credential store; the identity inside the token is trusted until expiry.
func (h *AuthHandler) Check(c *gin.Context) {
	for _, role := range []string{session.RoleAdmin, session.RoleEmployee} {
		claims, ok := session.FromCookie(c, h.config.Session.JWTSecret, role)
		if !ok {
			continue
		}

		c.JSON(http.StatusOK, gin.H{
			"authenticated": true,
			"role":          claims.Role,
			"userId":        claims.Subject,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"authenticated": false,
		"role":          nil,
		"userId":        nil,
	})
}
