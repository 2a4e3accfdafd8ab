// Package timefmt renders timestamps in the compact relative form event
// cards use: "1w", "3d", "2h", "<1h".
package timefmt

import (
	"fmt"
	"time"
)

// Compact returns the coarse relative age of t against now. Future
// timestamps collapse to "Now", the zero time to "0d".
func Compact(t, now time.Time) string {
	if t.IsZero() {
		return "0d"
	}
	diff := now.Sub(t)
	if diff < 0 {
		return "Now"
	}

	hours := int(diff.Hours())
	days := hours / 24
	weeks := days / 7

	switch {
	case weeks > 0:
		return fmt.Sprintf("%dw", weeks)
	case days > 0:
		return fmt.Sprintf("%dd", days)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	}
	return "<1h"
}

// CompactSince parses an RFC3339 timestamp and formats it with Compact.
// An empty value yields "0d"; an unparseable one yields "".
func CompactSince(iso string, now time.Time) string {
	if iso == "" {
		return "0d"
	}
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return ""
	}
	return Compact(t, now)
}
