package booking

import (
	"time"

	"github.com/craftfolio/booking-engine/internal/httperr"
)

const (
	clockLayout12 = "3:04 PM"
	clockLayout24 = "15:04"
	dateLayout    = "2006-01-02"
)

// ParseClock turns a wall-clock string into minutes since midnight.
// Bookings carry 12-hour times ("9:00 AM"); settings carry 24-hour
// times ("09:00"). Both are accepted.
func ParseClock(s string) (int, error) {
	for _, layout := range []string{clockLayout12, clockLayout24} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Hour()*60 + t.Minute(), nil
		}
	}
	return 0, httperr.Validation("invalid_time", "Time must look like \"9:00 AM\" or \"09:00\".")
}

// FormatClock renders minutes since midnight in the 12-hour format
// bookings are stored with.
func FormatClock(minutes int) string {
	t := time.Date(2000, 1, 1, minutes/60, minutes%60, 0, 0, time.UTC)
	return t.Format(clockLayout12)
}

// Overlaps tests two half-open minute intervals with the three-clause
// rule: a starts inside b, a ends inside b, or a encloses b.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	if aStart >= bStart && aStart < bEnd {
		return true
	}
	if aEnd > bStart && aEnd <= bEnd {
		return true
	}
	return aStart <= bStart && aEnd >= bEnd
}
