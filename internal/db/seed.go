package db

import (
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/mondaynail/salon-api/internal/config"
	"github.com/mondaynail/salon-api/internal/models"
)

// Seed upserts the default admin and employee accounts. It is idempotent:
// existing emails are left untouched, so rotating a seed password requires a
// manual update. Failures are logged and skipped rather than aborting boot.
func Seed(db *gorm.DB, cfg config.SeedConfig, log *zap.Logger) {
	seedAdmin(db, cfg, log)
	seedEmployees(db, cfg, log)
}

func seedAdmin(db *gorm.DB, cfg config.SeedConfig, log *zap.Logger) {
	email := strings.ToLower(strings.TrimSpace(cfg.AdminEmail))
	if email == "" {
		return
	}

	var count int64
	if err := db.Model(&models.Admin{}).Where("email = ?", email).Count(&count).Error; err != nil {
		log.Warn("admin seed lookup failed", zap.String("email", email), zap.Error(err))
		return
	}
	if count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Warn("admin seed hash failed", zap.Error(err))
		return
	}

	admin := models.Admin{
		Email:        email,
		PasswordHash: string(hashed),
		Name:         cfg.AdminName,
		Role:         "admin",
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Warn("admin seed failed", zap.String("email", email), zap.Error(err))
		return
	}

	log.Info("seeded admin account", zap.String("email", email))
}

func seedEmployees(db *gorm.DB, cfg config.SeedConfig, log *zap.Logger) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.EmployeePassword), bcrypt.DefaultCost)
	if err != nil {
		log.Warn("employee seed hash failed", zap.Error(err))
		return
	}

	for i, rawEmail := range cfg.EmployeeEmails {
		email := strings.ToLower(strings.TrimSpace(rawEmail))
		if email == "" {
			continue
		}

		name := email
		if i < len(cfg.EmployeeNames) && cfg.EmployeeNames[i] != "" {
			name = cfg.EmployeeNames[i]
		}

		var count int64
		if err := db.Model(&models.Employee{}).Where("email = ?", email).Count(&count).Error; err != nil {
			log.Warn("employee seed lookup failed", zap.String("email", email), zap.Error(err))
			continue
		}
		if count > 0 {
			continue
		}

		employee := models.Employee{
			Email:        email,
			PasswordHash: string(hashed),
			Name:         name,
			Role:         "employee",
		}

		if err := db.Create(&employee).Error; err != nil {
			log.Warn("employee seed failed", zap.String("email", email), zap.Error(err))
			continue
		}

		log.Info("seeded employee account", zap.String("email", email))
	}
}
