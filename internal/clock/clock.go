// Package clock supplies the current instant and formats it for the
// segment.
package clock

import (
	"math"
	"time"

	"github.com/ncruces/go-strftime"

	"github.com/julianstephens/zoneline/internal/constants"
)

// Clock returns the current instant.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock.
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}

// Fixed always returns the same instant.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}

// InOffset returns t in a fixed zone named label that is hours ahead of
// UTC. Fractional hours are rounded to the nearest second.
func InOffset(t time.Time, label string, hours float64) time.Time {
	secs := int(math.Round(hours * 3600))
	return t.In(time.FixedZone(label, secs))
}

// FormatDate renders t with a strftime template, falling back to the
// default date template when format is empty.
func FormatDate(t time.Time, format string) string {
	if format == "" {
		format = constants.DefaultDateFormat
	}
	return strftime.Format(format, t)
}

// FormatTime renders t with a strftime template, falling back to the
// default time template when format is empty.
func FormatTime(t time.Time, format string) string {
	if format == "" {
		format = constants.DefaultTimeFormat
	}
	return strftime.Format(format, t)
}
