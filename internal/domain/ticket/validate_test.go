package ticket

import (
	"testing"
	"time"

	"github.com/mondaynail/salon-api/internal/httperr"
)

func TestValidatePrice(t *testing.T) {
	for _, price := range []float64{-100, -0.01, 0} {
		if err := ValidatePrice(price); !httperr.IsBusiness(err, "invalid_price") {
			t.Errorf("price %v: expected invalid_price, got %v", price, err)
		}
	}

	for _, price := range []float64{0.01, 1, 350, 99999} {
		if err := ValidatePrice(price); err != nil {
			t.Errorf("price %v: expected nil, got %v", price, err)
		}
	}
}

func TestNormalizeWorkerName(t *testing.T) {
	if _, err := NormalizeWorkerName("   "); !httperr.IsBusiness(err, "missing_worker_name") {
		t.Fatalf("expected missing_worker_name, got %v", err)
	}

	name, err := NormalizeWorkerName("  อั้ม  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "อั้ม" {
		t.Fatalf("expected trimmed name, got %q", name)
	}
}

func TestNormalizeImageURLs(t *testing.T) {
	six := []string{
		"https://cdn.example.com/1.webp",
		"https://cdn.example.com/2.webp",
		"https://cdn.example.com/3.webp",
		"https://cdn.example.com/4.webp",
		"https://cdn.example.com/5.webp",
		"https://cdn.example.com/6.webp",
	}
	if _, err := NormalizeImageURLs(six); !httperr.IsBusiness(err, "too_many_images") {
		t.Fatalf("expected too_many_images, got %v", err)
	}

	if _, err := NormalizeImageURLs([]string{"https://cdn.example.com/a.webp", "   "}); !httperr.IsBusiness(err, "invalid_image_url") {
		t.Fatalf("expected invalid_image_url for blank entry, got %v", err)
	}

	if _, err := NormalizeImageURLs([]string{"not a url"}); !httperr.IsBusiness(err, "invalid_image_url") {
		t.Fatalf("expected invalid_image_url for junk entry, got %v", err)
	}

	urls, err := NormalizeImageURLs([]string{" https://cdn.example.com/a.webp "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(urls) != 1 || urls[0] != "https://cdn.example.com/a.webp" {
		t.Fatalf("expected trimmed url, got %v", urls)
	}

	empty, err := NormalizeImageURLs(nil)
	if err != nil || len(empty) != 0 {
		t.Fatalf("empty list should be allowed, got %v %v", empty, err)
	}
}

func TestValidateStatus(t *testing.T) {
	for _, s := range []string{"pending", "completed", "cancelled"} {
		status, err := ValidateStatus(s)
		if err != nil {
			t.Errorf("status %q: unexpected error %v", s, err)
		}
		if string(status) != s {
			t.Errorf("status %q: got %q", s, status)
		}
	}

	for _, s := range []string{"", "done", "COMPLETED", "scheduled"} {
		if _, err := ValidateStatus(s); !httperr.IsBusiness(err, "invalid_status") {
			t.Errorf("status %q: expected invalid_status, got %v", s, err)
		}
	}
}

func TestParseOccurredAt(t *testing.T) {
	loc, _ := time.LoadLocation("Asia/Bangkok")

	got, err := ParseOccurredAt("2025-03-15", loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2025, 3, 15, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	if _, err := ParseOccurredAt("2025-03-15T10:30:00+07:00", loc); err != nil {
		t.Fatalf("RFC 3339 should parse, got %v", err)
	}

	for _, bad := range []string{"", "15/03/2025", "yesterday"} {
		if _, err := ParseOccurredAt(bad, loc); !httperr.IsBusiness(err, "invalid_occurred_at") {
			t.Errorf("value %q: expected invalid_occurred_at, got %v", bad, err)
		}
	}
}

func TestInitialStatus(t *testing.T) {
	if InitialStatus() != StatusCompleted {
		t.Fatalf("new tickets should default to completed, got %q", InitialStatus())
	}
}
