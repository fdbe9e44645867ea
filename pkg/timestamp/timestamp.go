// Package timestamp provides tolerant timestamp handling with an RFC3339
// UTC string as the canonical form.
//
// The interchange format carries timestamps as strings (dcterms:modified);
// source systems deliver anything from RFC3339 with offsets to Unix epoch
// numbers. Normalize accepts the variants and always yields the canonical
// form, so that a round-tripped document is byte-stable.
package timestamp

import "time"

// layouts are tried in order when parsing a timestamp string.
var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Now returns the current time in canonical form.
func Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// Format renders a time in canonical form.
func Format(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// Parse parses a timestamp string in any accepted layout.
func Parse(s string) (time.Time, bool) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Normalize converts a timestamp value of any accepted shape — string
// layouts, Unix seconds or milliseconds, time.Time — to canonical form.
// ok is false when the value cannot be interpreted as a timestamp.
func Normalize(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		parsed, ok := Parse(t)
		if !ok {
			return "", false
		}
		return Format(parsed), true
	case time.Time:
		return Format(t), true
	case float64:
		return fromEpoch(int64(t)), true
	case int64:
		return fromEpoch(t), true
	case int:
		return fromEpoch(int64(t)), true
	default:
		return "", false
	}
}

// fromEpoch interprets an epoch number as seconds or, above the year-2286
// seconds range, as milliseconds.
func fromEpoch(n int64) string {
	const msThreshold = int64(1) << 35 // ~year 3058 in seconds, ~1971 in ms
	if n >= msThreshold {
		return Format(time.UnixMilli(n))
	}
	return Format(time.Unix(n, 0))
}
