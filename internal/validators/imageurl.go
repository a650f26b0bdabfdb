package validators

import (
	"net/url"
	"strings"
)

// IsLikelyImageURL checks that s parses as an absolute http(s) URL. The media
// host controls the real format; this only rejects obviously broken entries
// before they are persisted on a ticket.
func IsLikelyImageURL(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}

	u, err := url.Parse(s)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
