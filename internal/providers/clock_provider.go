package providers

import (
	"fmt"
	"strings"
	"time"

	"namecard/internal/structures"
)

type ClockProviderInterface interface {
	Now() time.Time
	ParseCivil(value string) (time.Time, error)
	Location() *time.Location
}

// ClockProvider produces time in one fixed civil timezone. Every stored
// timestamp and every expiry comparison goes through it, so the recorded
// values never depend on the host clock's zone.
type ClockProvider struct {
	loc *time.Location
}

func NewClockProvider(conf *structures.Config) (ClockProviderInterface, error) {
	loc, err := time.LoadLocation(conf.Recording.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", conf.Recording.Timezone, err)
	}
	return &ClockProvider{loc: loc}, nil
}

func (c *ClockProvider) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *ClockProvider) Location() *time.Location {
	return c.loc
}

var civilLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseCivil parses a lenient civil timestamp: YYYY-MM-DD HH:MM[:SS] with
// an optional T separator. A trailing offset (Z, +HH, +HHMM, +HH:MM) is
// stripped, not honored - the value is always interpreted in the fixed
// zone, whatever offset the client embedded. Fractional seconds are
// truncated. This mirrors what admin UIs actually submit; rejecting the
// odd shapes would break the fail-open expiry contract.
func (c *ClockProvider) ParseCivil(value string) (time.Time, error) {
	s := strings.TrimSpace(value)
	if len(s) > 10 {
		s = s[:10] + strings.Replace(s[10:], "T", " ", 1)
		s = strings.TrimSuffix(s, "Z")
		// Offsets and fractions only occur after the time part.
		if i := strings.IndexAny(s[10:], "+."); i >= 0 {
			s = s[:10+i]
		}
		if i := strings.LastIndex(s[10:], "-"); i >= 0 {
			s = s[:10+i]
		}
		s = strings.TrimSpace(s)
	}

	var lastErr error
	for _, layout := range civilLayouts {
		t, err := time.ParseInLocation(layout, s, c.loc)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, fmt.Errorf("parse civil timestamp %q: %w", value, lastErr)
}
