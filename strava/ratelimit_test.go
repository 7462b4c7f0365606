package strava

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRateLimits(t *testing.T) {
	h := http.Header{}
	h.Set("X-Ratelimit-Limit", "600,30000")
	h.Set("X-Ratelimit-Usage", "314,27000")

	limits, ok := ParseRateLimits(h)
	assert.True(t, ok)
	assert.Equal(t, RateLimits{
		ShortTermUsage: 314,
		ShortTermLimit: 600,
		LongTermUsage:  27000,
		LongTermLimit:  30000,
	}, limits)
	assert.False(t, limits.Exceeded())
}

func TestParseRateLimitsWithSpaces(t *testing.T) {
	h := http.Header{}
	h.Set("X-Ratelimit-Limit", "600, 30000")
	h.Set("X-Ratelimit-Usage", "601, 27000")

	limits, ok := ParseRateLimits(h)
	assert.True(t, ok)
	assert.True(t, limits.Exceeded())
}

func TestParseRateLimitsAbsent(t *testing.T) {
	_, ok := ParseRateLimits(http.Header{})
	assert.False(t, ok)
}

func TestParseRateLimitsMalformed(t *testing.T) {
	h := http.Header{}
	h.Set("X-Ratelimit-Limit", "600")
	h.Set("X-Ratelimit-Usage", "314,27000")
	_, ok := ParseRateLimits(h)
	assert.False(t, ok)

	h.Set("X-Ratelimit-Limit", "x,y")
	_, ok = ParseRateLimits(h)
	assert.False(t, ok)
}
