package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mondaynail/salon-api/internal/domain/report"
	ucTicket "github.com/mondaynail/salon-api/internal/usecase/ticket"
)

func reportRouter(repo *memTicketRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	listUC := ucTicket.NewListWorkTickets(repo)
	h := NewReportHandler(listUC, "Asia/Bangkok", zap.NewNop())

	r := gin.New()
	r.GET("/api/reports/dashboard", h.Dashboard)
	r.GET("/api/reports/statistics", h.Statistics)
	r.GET("/api/reports/daily", h.Daily)
	return r
}

func seedTickets(t *testing.T, r *gin.Engine, repo *memTicketRepo) {
	t.Helper()

	create := ticketRouter(repo)
	for _, body := range []string{
		`{"price": 100, "workerName": "Am"}`,
		`{"price": 200, "workerName": "Am"}`,
		`{"price": 300, "workerName": "Tulip"}`,
	} {
		w := doJSON(create, http.MethodPost, "/api/work-tickets", body)
		if w.Code != http.StatusCreated {
			t.Fatalf("seed failed: %d %s", w.Code, w.Body.String())
		}
	}
}

func TestReportDashboard(t *testing.T) {
	repo := newMemTicketRepo()
	r := reportRouter(repo)
	seedTickets(t, r, repo)

	w := doJSON(r, http.MethodGet, "/api/reports/dashboard", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var got report.DashboardSummary
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.TotalTickets != 3 || got.TodayRevenue != 600 || got.ActiveWorkers != 2 {
		t.Errorf("unexpected summary: %+v", got)
	}
	if len(got.RecentActivities) != 3 {
		t.Errorf("RecentActivities len = %d, want 3", len(got.RecentActivities))
	}
}

func TestReportStatistics(t *testing.T) {
	repo := newMemTicketRepo()
	r := reportRouter(repo)
	seedTickets(t, r, repo)

	for _, period := range []string{"", "all", "week", "month"} {
		path := "/api/reports/statistics"
		if period != "" {
			path += "?period=" + period
		}

		w := doJSON(r, http.MethodGet, path, "")
		if w.Code != http.StatusOK {
			t.Fatalf("period %q: status = %d", period, w.Code)
		}

		var got report.Statistics
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got.TotalTickets != 3 || got.TotalRevenue != 600 {
			t.Errorf("period %q: unexpected stats %+v", period, got)
		}
	}
}

func TestReportStatisticsRejectsBadPeriod(t *testing.T) {
	repo := newMemTicketRepo()
	r := reportRouter(repo)

	w := doJSON(r, http.MethodGet, "/api/reports/statistics?period=year", "")
	if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "invalid_period") {
		t.Errorf("status = %d body = %s", w.Code, w.Body.String())
	}
}

func TestReportDaily(t *testing.T) {
	repo := newMemTicketRepo()
	r := reportRouter(repo)
	seedTickets(t, r, repo)

	w := doJSON(r, http.MethodGet, "/api/reports/daily", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var got struct {
		Data  []report.DateSummary `json:"data"`
		Total int                  `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Total != 1 || len(got.Data) != 1 {
		t.Fatalf("expected a single day bucket, got %s", w.Body.String())
	}

	day := got.Data[0]
	if day.TicketCount != 3 || day.TotalRevenue != 600 {
		t.Errorf("unexpected day summary: %+v", day)
	}
	if am := day.PerWorker["Am"]; am.Count != 2 || am.Revenue != 300 {
		t.Errorf("worker breakdown wrong: %+v", day.PerWorker)
	}
}
