package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mondaynail/salon-api/internal/dto"
	"github.com/mondaynail/salon-api/internal/httperr"
	"github.com/mondaynail/salon-api/internal/httpresp"
	"github.com/mondaynail/salon-api/internal/models"
)

type EmployeeHandler struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewEmployeeHandler(db *gorm.DB, log *zap.Logger) *EmployeeHandler {
	return &EmployeeHandler{db: db, log: log}
}

// List returns the worker options for the report form, sourced from the
// employee records instead of a hardcoded list.
func (h *EmployeeHandler) List(c *gin.Context) {
	var employees []models.Employee
	if err := h.db.
		Order("id ASC").
		Find(&employees).Error; err != nil {

		h.log.Error("employee list failed", zap.Error(err))
		httperr.Internal(c, "internal_error", "เกิดข้อผิดพลาด กรุณาลองใหม่")
		return
	}

	out := make([]dto.EmployeeOption, 0, len(employees))
	for _, e := range employees {
		out = append(out, dto.EmployeeOption{
			ID:   e.ID,
			Name: e.Name,
		})
	}

	httpresp.List(c, out)
}
