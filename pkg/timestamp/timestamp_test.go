package timestamp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		in       any
		expected string
		ok       bool
	}{
		{"rfc3339", "2026-08-31T12:00:00Z", "2026-08-31T12:00:00Z", true},
		{"rfc3339 with offset", "2026-08-31T14:00:00+02:00", "2026-08-31T12:00:00Z", true},
		{"rfc3339 nanos", "2026-08-31T12:00:00.5Z", "2026-08-31T12:00:00Z", true},
		{"no zone", "2026-08-31T12:00:00", "2026-08-31T12:00:00Z", true},
		{"date only", "2026-08-31", "2026-08-31T00:00:00Z", true},
		{"unix seconds", float64(1673785845), "2023-01-15T12:30:45Z", true},
		{"unix millis", int64(1673785845123), "2023-01-15T12:30:45Z", true},
		{"time value", time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC), "2026-08-31T12:00:00Z", true},
		{"garbage string", "yesterday", "", false},
		{"nil", nil, "", false},
		{"bool", true, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Normalize(tt.in)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNormalizeIsStable(t *testing.T) {
	// Normalizing a canonical value is the identity.
	canonical := "2026-08-31T12:00:00Z"
	got, ok := Normalize(canonical)
	require.True(t, ok)
	assert.Equal(t, canonical, got)
}

func TestNowIsCanonical(t *testing.T) {
	now := Now()
	parsed, ok := Parse(now)
	require.True(t, ok)
	assert.Equal(t, now, Format(parsed))
}
