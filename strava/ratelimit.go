package strava

import (
	"net/http"
	"strconv"
	"strings"
)

// RateLimits reports the application's request quotas as returned in the
// X-Ratelimit headers on every response. The short window is 15 minutes,
// the long window is the current day.
type RateLimits struct {
	ShortTermUsage int
	ShortTermLimit int
	LongTermUsage  int
	LongTermLimit  int
}

// Exceeded reports whether either window's quota has been used up.
func (r RateLimits) Exceeded() bool {
	return r.ShortTermUsage >= r.ShortTermLimit || r.LongTermUsage >= r.LongTermLimit
}

// ParseRateLimits reads the X-Ratelimit-Limit and X-Ratelimit-Usage headers
// from a response. ok is false when the headers are absent or malformed.
func ParseRateLimits(h http.Header) (limits RateLimits, ok bool) {
	shortLimit, longLimit, ok := splitRateHeader(h.Get("X-Ratelimit-Limit"))
	if !ok {
		return RateLimits{}, false
	}
	shortUsage, longUsage, ok := splitRateHeader(h.Get("X-Ratelimit-Usage"))
	if !ok {
		return RateLimits{}, false
	}
	return RateLimits{
		ShortTermUsage: shortUsage,
		ShortTermLimit: shortLimit,
		LongTermUsage:  longUsage,
		LongTermLimit:  longLimit,
	}, true
}

func splitRateHeader(value string) (short, long int, ok bool) {
	parts := strings.Split(value, ",")
	if len(parts) != 2 {
		return 0, 0, false
	}
	short, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false
	}
	long, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, false
	}
	return short, long, true
}
