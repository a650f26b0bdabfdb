package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mondaynail/salon-api/internal/domain/report"
	"github.com/mondaynail/salon-api/internal/httperr"
	"github.com/mondaynail/salon-api/internal/httpresp"
	"github.com/mondaynail/salon-api/internal/timezone"
	ucTicket "github.com/mondaynail/salon-api/internal/usecase/ticket"
)

// ReportHandler serves the admin dashboards. Every response is recomputed
// from the full ticket list; nothing is cached or materialized.
type ReportHandler struct {
	listUC *ucTicket.ListWorkTickets
	tz     string
	log    *zap.Logger
}

func NewReportHandler(listUC *ucTicket.ListWorkTickets, tz string, log *zap.Logger) *ReportHandler {
	return &ReportHandler{
		listUC: listUC,
		tz:     tz,
		log:    log,
	}
}

func (h *ReportHandler) Dashboard(c *gin.Context) {
	tickets, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		h.log.Error("dashboard load failed", zap.Error(err))
		httperr.Internal(c, "internal_error", "เกิดข้อผิดพลาด กรุณาลองใหม่")
		return
	}

	summary := report.BuildDashboardSummary(
		tickets,
		timezone.NowIn(h.tz),
		timezone.Location(h.tz),
	)

	httpresp.OK(c, summary)
}

func (h *ReportHandler) Statistics(c *gin.Context) {
	period := report.Period(strings.TrimSpace(c.DefaultQuery("period", "all")))
	if !report.ValidPeriod(period) {
		httperr.BadRequest(c, "invalid_period", "ช่วงเวลาไม่ถูกต้อง")
		return
	}

	tickets, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		h.log.Error("statistics load failed", zap.Error(err))
		httperr.Internal(c, "internal_error", "เกิดข้อผิดพลาด กรุณาลองใหม่")
		return
	}

	stats := report.BuildStatistics(
		tickets,
		period,
		timezone.NowIn(h.tz),
		timezone.Location(h.tz),
	)

	httpresp.OK(c, stats)
}

func (h *ReportHandler) Daily(c *gin.Context) {
	tickets, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		h.log.Error("daily summaries load failed", zap.Error(err))
		httperr.Internal(c, "internal_error", "เกิดข้อผิดพลาด กรุณาลองใหม่")
		return
	}

	summaries := report.BuildDateSummaries(tickets, timezone.Location(h.tz))

	httpresp.List(c, summaries)
}
