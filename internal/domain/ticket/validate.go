package ticket

import (
	"strings"
	"time"

	"github.com/mondaynail/salon-api/internal/httperr"
	"github.com/mondaynail/salon-api/internal/validators"
)

const MaxImages = 5

// ValidatePrice enforces the price > 0 invariant.
func ValidatePrice(price float64) error {
	if price <= 0 {
		return httperr.ErrBusiness("invalid_price")
	}
	return nil
}

// NormalizeWorkerName trims the worker name and rejects empty values.
func NormalizeWorkerName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", httperr.ErrBusiness("missing_worker_name")
	}
	return name, nil
}

func NormalizeDescription(description string) string {
	return strings.TrimSpace(description)
}

// NormalizeImageURLs trims every entry and enforces the 0..5 bound. An entry
// that is empty after trimming or is not an absolute http(s) URL is rejected
// rather than silently dropped.
func NormalizeImageURLs(urls []string) ([]string, error) {
	if len(urls) > MaxImages {
		return nil, httperr.ErrBusiness("too_many_images")
	}

	out := make([]string, 0, len(urls))
	for _, u := range urls {
		u = strings.TrimSpace(u)
		if u == "" || !validators.IsLikelyImageURL(u) {
			return nil, httperr.ErrBusiness("invalid_image_url")
		}
		out = append(out, u)
	}

	return out, nil
}

// ValidateStatus enforces the closed status enum.
func ValidateStatus(s string) (Status, error) {
	status := Status(strings.TrimSpace(s))
	if !IsValid(status) {
		return "", httperr.ErrBusiness("invalid_status")
	}
	return status, nil
}

// ParseOccurredAt parses the business date of the work. The employee form
// sends a plain calendar date; API clients may send a full RFC 3339 stamp.
func ParseOccurredAt(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, httperr.ErrBusiness("invalid_occurred_at")
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.In(loc), nil
	}

	t, err := time.ParseInLocation("2006-01-02", value, loc)
	if err != nil {
		return time.Time{}, httperr.ErrBusiness("invalid_occurred_at")
	}
	return t, nil
}
