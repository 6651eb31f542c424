package validate

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

var (
	reID       = regexp.MustCompile(`^[A-Za-z0-9_.-]{1,128}$`)
	reQ        = regexp.MustCompile(`^[\p{L}\p{N} _'&.,-]{1,100}$`)
	reCategory = regexp.MustCompile(`^[0-9]{2}$`)
	reKey      = regexp.MustCompile(`^[a-z0-9_.-]{1,64}$`)
)

// ID validates entity and battle identifiers (uuids, slugs, orchestrator ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Q validates a search query: trims, enforces allowed characters and max length.
// An empty query is valid and matches everything.
func Q(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", true
	}
	if len(s) > 100 {
		s = s[:100]
	}
	return s, reQ.MatchString(s)
}

// Name validates a displayable name with a reasonable max length.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 64 {
		return "", false
	}
	return s, true
}

// Category validates an image product number such as "01".
func Category(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reCategory.MatchString(s)
}

// MetaKey validates a metadata key.
func MetaKey(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reKey.MatchString(s)
}

// URL accepts absolute http(s) URLs only.
func URL(s string) (string, bool) {
	s = strings.TrimSpace(s)
	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return "", false
	}
	return s, u.Scheme == "http" || u.Scheme == "https"
}

// Limit parses a result limit; bad or missing values fall back to def.
func Limit(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return def
	}
	if n > 200 {
		return 200
	} // clamp to avoid abuse
	return n
}
