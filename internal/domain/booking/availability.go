package booking

import (
	"time"

	"github.com/craftfolio/booking-engine/internal/models"
)

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type SlotQuery struct {
	Settings        *models.TenantSettings
	Date            time.Time // midnight of the target day, tenant location
	DurationMinutes int
	Appointments    []models.Appointment
	Now             time.Time
}

// DaySlots generates the offerable slots for one day.
//
// The axis runs over [start, end) of the configured working hours,
// anchored to the target date, never the server's current day. The
// step between consecutive candidates is duration + buffer; a buffer
// of zero packs slots back to back. A candidate is dropped when it
// would run past closing, when a non-cancelled booking already starts
// at that time, or when the day is today and the time is not in the
// future. Disabled or malformed days (including start >= end) yield an
// empty list rather than an error.
func DaySlots(q SlotQuery) []TimeSlot {
	settings := q.Settings
	day, ok := settings.WorkingHours[models.WeekdayKey(q.Date.Weekday())]
	if !ok || !day.Enabled {
		return nil
	}

	dayStart, err := ParseClock(day.Start)
	if err != nil {
		return nil
	}
	dayEnd, err := ParseClock(day.End)
	if err != nil || dayStart >= dayEnd {
		return nil
	}

	duration := q.DurationMinutes
	if duration <= 0 {
		duration = settings.DefaultDurationMinutes
	}
	if duration <= 0 {
		return nil
	}

	step := duration + settings.BufferMinutes
	if step <= 0 {
		step = duration
	}

	dateKey := q.Date.Format(dateLayout)
	taken := make(map[int]bool)
	for _, ap := range q.Appointments {
		if ap.Date != dateKey || ap.Status == string(StatusCancelled) {
			continue
		}
		if start, err := ParseClock(ap.Time); err == nil {
			taken[start] = true
		}
	}

	isToday := q.Now.Format(dateLayout) == dateKey
	nowMinutes := q.Now.Hour()*60 + q.Now.Minute()

	var slots []TimeSlot
	for t := dayStart; t+duration <= dayEnd; t += step {
		if taken[t] {
			continue
		}
		if isToday && t <= nowMinutes {
			continue
		}
		slots = append(slots, TimeSlot{
			Start: FormatClock(t),
			End:   FormatClock(t + duration),
		})
	}

	return slots
}

// MonthDates lists the bookable dates of a month: days whose weekday
// is enabled and whose midnight lies strictly after now, so today is
// never offered here even though the day view still serves it.
func MonthDates(settings *models.TenantSettings, year int, month time.Month, now time.Time, loc *time.Location) []string {
	var dates []string

	for d := time.Date(year, month, 1, 0, 0, 0, 0, loc); d.Month() == month; d = d.AddDate(0, 0, 1) {
		day, ok := settings.WorkingHours[models.WeekdayKey(d.Weekday())]
		if !ok || !day.Enabled {
			continue
		}
		if !d.After(now) {
			continue
		}
		dates = append(dates, d.Format(dateLayout))
	}

	return dates
}

// EnabledDurations filters the configured durations down to the ones a
// visitor may pick.
func EnabledDurations(settings *models.TenantSettings) []models.DurationOption {
	var out []models.DurationOption
	for _, d := range settings.Durations {
		if d.Enabled {
			out = append(out, d)
		}
	}
	return out
}

// EnabledServices filters the configured services, falling back to a
// single general service when a tenant configured none.
func EnabledServices(settings *models.TenantSettings) []models.ServiceType {
	var out []models.ServiceType
	for _, s := range settings.ServiceTypes {
		if s.Enabled {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		out = append(out, models.ServiceType{
			ID:      "general",
			Name:    "General Appointment",
			Enabled: true,
		})
	}
	return out
}

// ResolveService maps a requested service id to the tenant's catalog,
// defaulting to the first enabled service for empty or unknown ids.
func ResolveService(settings *models.TenantSettings, serviceID string) models.ServiceRef {
	enabled := EnabledServices(settings)
	if serviceID != "" {
		for _, s := range enabled {
			if s.ID == serviceID {
				return models.ServiceRef{ID: s.ID, Name: s.Name}
			}
		}
	}
	return models.ServiceRef{ID: enabled[0].ID, Name: enabled[0].Name}
}
