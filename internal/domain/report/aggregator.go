package report

import (
	"sort"
	"time"

	"github.com/mondaynail/salon-api/internal/models"
)

// Reporting is computed from the full ticket list on every read. Nothing is
// materialized; at a single salon's volume the O(n log n) passes are cheap.
// If the data set ever outgrows this, the ticket store should gain a
// date-range query feeding these same functions incrementally.

// ===============================
// Result shapes
// ===============================

type RecentActivity struct {
	ID          string    `json:"id"`
	WorkerName  string    `json:"workerName"`
	Price       float64   `json:"price"`
	Status      string    `json:"status"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type DashboardSummary struct {
	TotalTickets     int              `json:"totalTickets"`
	TodayRevenue     float64          `json:"todayRevenue"`
	ActiveWorkers    int              `json:"activeWorkers"`
	CompletedTickets int              `json:"completedTickets"`
	RecentActivities []RecentActivity `json:"recentActivities"`
}

type WorkerStat struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

type MonthRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

type DayStat struct {
	Date    string  `json:"date"`
	Tickets int     `json:"tickets"`
	Revenue float64 `json:"revenue"`
}

type Statistics struct {
	TotalTickets     int            `json:"totalTickets"`
	TotalRevenue     float64        `json:"totalRevenue"`
	AveragePrice     float64        `json:"averagePrice"`
	CompletedTickets int            `json:"completedTickets"`
	PendingTickets   int            `json:"pendingTickets"`
	CancelledTickets int            `json:"cancelledTickets"`
	TopWorkers       []WorkerStat   `json:"topWorkers"`
	MonthlyRevenue   []MonthRevenue `json:"monthlyRevenue"`
	DailyStats       []DayStat      `json:"dailyStats"`
}

type WorkerDayStat struct {
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

type DateSummary struct {
	Date         string                   `json:"date"`
	TotalRevenue float64                  `json:"totalRevenue"`
	TicketCount  int                      `json:"ticketCount"`
	PerWorker    map[string]WorkerDayStat `json:"perWorker"`
}

type Period string

const (
	PeriodAll   Period = "all"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

func ValidPeriod(p Period) bool {
	return p == PeriodAll || p == PeriodWeek || p == PeriodMonth
}

// ===============================
// Dashboard
// ===============================

// DashboardSummary derives the admin landing-page numbers. "Today" compares
// calendar dates in loc; ActiveWorkers counts distinct worker names over the
// whole ticket list, not just today's.
func BuildDashboardSummary(
	tickets []models.WorkTicket,
	asOf time.Time,
	loc *time.Location,
) DashboardSummary {

	today := dayKey(asOf, loc)

	var todayRevenue float64
	completed := 0
	workers := map[string]struct{}{}

	for _, t := range tickets {
		workers[t.WorkerName] = struct{}{}
		if t.Status == "completed" {
			completed++
		}
		if dayKey(t.CreatedAt, loc) == today {
			todayRevenue += t.Price
		}
	}

	recent := sortedByCreatedDesc(tickets)
	if len(recent) > 5 {
		recent = recent[:5]
	}

	activities := make([]RecentActivity, 0, len(recent))
	for _, t := range recent {
		activities = append(activities, RecentActivity{
			ID:          t.ID,
			WorkerName:  t.WorkerName,
			Price:       t.Price,
			Status:      t.Status,
			Description: t.Description,
			CreatedAt:   t.CreatedAt,
		})
	}

	return DashboardSummary{
		TotalTickets:     len(tickets),
		TodayRevenue:     todayRevenue,
		ActiveWorkers:    len(workers),
		CompletedTickets: completed,
		RecentActivities: activities,
	}
}

// ===============================
// Statistics
// ===============================

// BuildStatistics aggregates the statistics page. The period filter uses the
// business date (occurredAt, falling back to createdAt); month and day
// buckets group by createdAt like the dashboard does.
func BuildStatistics(
	tickets []models.WorkTicket,
	period Period,
	now time.Time,
	loc *time.Location,
) Statistics {

	filtered := filterByPeriod(tickets, period, now)

	var totalRevenue float64
	completed, pending, cancelled := 0, 0, 0

	for _, t := range filtered {
		totalRevenue += t.Price
		switch t.Status {
		case "completed":
			completed++
		case "pending":
			pending++
		case "cancelled":
			cancelled++
		}
	}

	averagePrice := 0.0
	if len(filtered) > 0 {
		averagePrice = totalRevenue / float64(len(filtered))
	}

	return Statistics{
		TotalTickets:     len(filtered),
		TotalRevenue:     totalRevenue,
		AveragePrice:     averagePrice,
		CompletedTickets: completed,
		PendingTickets:   pending,
		CancelledTickets: cancelled,
		TopWorkers:       topWorkers(filtered),
		MonthlyRevenue:   monthlyRevenue(filtered, loc),
		DailyStats:       dailyStats(filtered, loc),
	}
}

func filterByPeriod(
	tickets []models.WorkTicket,
	period Period,
	now time.Time,
) []models.WorkTicket {

	var cutoff time.Time
	switch period {
	case PeriodWeek:
		cutoff = now.AddDate(0, 0, -7)
	case PeriodMonth:
		cutoff = now.AddDate(0, -1, 0)
	default:
		return tickets
	}

	out := make([]models.WorkTicket, 0, len(tickets))
	for _, t := range tickets {
		when := t.OccurredAt
		if when.IsZero() {
			when = t.CreatedAt
		}
		if !when.Before(cutoff) {
			out = append(out, t)
		}
	}
	return out
}

// topWorkers groups by worker name, sums count and revenue and keeps the top
// five by revenue. The sort is stable so revenue ties keep the order in which
// the workers were first seen.
func topWorkers(tickets []models.WorkTicket) []WorkerStat {
	index := map[string]int{}
	stats := make([]WorkerStat, 0)

	for _, t := range tickets {
		i, ok := index[t.WorkerName]
		if !ok {
			i = len(stats)
			index[t.WorkerName] = i
			stats = append(stats, WorkerStat{Name: t.WorkerName})
		}
		stats[i].Count++
		stats[i].Revenue += t.Price
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Revenue > stats[j].Revenue
	})

	if len(stats) > 5 {
		stats = stats[:5]
	}
	return stats
}

func monthlyRevenue(tickets []models.WorkTicket, loc *time.Location) []MonthRevenue {
	byMonth := map[string]float64{}
	for _, t := range tickets {
		byMonth[t.CreatedAt.In(loc).Format("2006-01")] += t.Price
	}

	out := make([]MonthRevenue, 0, len(byMonth))
	for month, revenue := range byMonth {
		out = append(out, MonthRevenue{Month: month, Revenue: revenue})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Month < out[j].Month
	})
	return out
}

// dailyStats groups by calendar day and keeps only the most recent seven
// day buckets that actually have data, ascending.
func dailyStats(tickets []models.WorkTicket, loc *time.Location) []DayStat {
	byDay := map[string]*DayStat{}
	for _, t := range tickets {
		key := dayKey(t.CreatedAt, loc)
		d, ok := byDay[key]
		if !ok {
			d = &DayStat{Date: key}
			byDay[key] = d
		}
		d.Tickets++
		d.Revenue += t.Price
	}

	out := make([]DayStat, 0, len(byDay))
	for _, d := range byDay {
		out = append(out, *d)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})

	if len(out) > 7 {
		out = out[len(out)-7:]
	}
	return out
}

// ===============================
// Per-day drill-down
// ===============================

// BuildDateSummaries groups tickets by the calendar date they were created,
// newest date first, with a per-worker breakdown for each day.
func BuildDateSummaries(
	tickets []models.WorkTicket,
	loc *time.Location,
) []DateSummary {

	index := map[string]int{}
	out := make([]DateSummary, 0)

	for _, t := range tickets {
		key := dayKey(t.CreatedAt, loc)
		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, DateSummary{
				Date:      key,
				PerWorker: map[string]WorkerDayStat{},
			})
		}

		out[i].TotalRevenue += t.Price
		out[i].TicketCount++

		w := out[i].PerWorker[t.WorkerName]
		w.Count++
		w.Revenue += t.Price
		out[i].PerWorker[t.WorkerName] = w
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

// ===============================
// Helpers
// ===============================

func dayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}

func sortedByCreatedDesc(tickets []models.WorkTicket) []models.WorkTicket {
	out := make([]models.WorkTicket, len(tickets))
	copy(out, tickets)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
