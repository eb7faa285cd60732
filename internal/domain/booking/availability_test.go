package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftfolio/booking-engine/internal/models"
)

// 2030-01-07 is a Monday.
var monday = time.Date(2030, 1, 7, 0, 0, 0, 0, time.UTC)

func testNow() time.Time {
	return time.Date(2029, 6, 1, 12, 0, 0, 0, time.UTC)
}

func TestDaySlotsFullMonday(t *testing.T) {
	slots := DaySlots(SlotQuery{
		Settings: models.DefaultSettings(),
		Date:     monday,
		Now:      testNow(),
	})

	// 09:00-17:00 at 30 minutes is 16 slots.
	require.Len(t, slots, 16)
	assert.Equal(t, "9:00 AM", slots[0].Start)
	assert.Equal(t, "9:30 AM", slots[0].End)
	assert.Equal(t, "4:30 PM", slots[15].Start)
	assert.Equal(t, "5:00 PM", slots[15].End)
}

func TestDaySlotsCountFormula(t *testing.T) {
	settings := models.DefaultSettings()
	settings.DefaultDurationMinutes = 45

	slots := DaySlots(SlotQuery{
		Settings: settings,
		Date:     monday,
		Now:      testNow(),
	})

	// floor(480/45) = 10
	assert.Len(t, slots, 10)
}

func TestDaySlotsDisabledDay(t *testing.T) {
	settings := models.DefaultSettings()

	sunday := time.Date(2030, 1, 6, 0, 0, 0, 0, time.UTC)
	slots := DaySlots(SlotQuery{
		Settings:     settings,
		Date:         sunday,
		Appointments: []models.Appointment{{Date: "2030-01-06", Time: "10:00 AM", Status: "pending"}},
		Now:          testNow(),
	})

	assert.Empty(t, slots)
}

func TestDaySlotsInvertedHoursDegradeToEmpty(t *testing.T) {
	settings := models.DefaultSettings()
	settings.WorkingHours["monday"] = models.WorkingDay{Start: "17:00", End: "09:00", Enabled: true}

	assert.Empty(t, DaySlots(SlotQuery{Settings: settings, Date: monday, Now: testNow()}))
}

func TestDaySlotsMalformedHoursDegradeToEmpty(t *testing.T) {
	settings := models.DefaultSettings()
	settings.WorkingHours["monday"] = models.WorkingDay{Start: "soon", End: "later", Enabled: true}

	assert.Empty(t, DaySlots(SlotQuery{Settings: settings, Date: monday, Now: testNow()}))
}

func TestDaySlotsBufferWidensStep(t *testing.T) {
	settings := models.DefaultSettings()
	settings.BufferMinutes = 30

	slots := DaySlots(SlotQuery{
		Settings: settings,
		Date:     monday,
		Now:      testNow(),
	})

	// Step is duration + buffer = 60, so 9:00, 10:00, ..., 4:00 PM.
	require.Len(t, slots, 8)
	assert.Equal(t, "9:00 AM", slots[0].Start)
	assert.Equal(t, "10:00 AM", slots[1].Start)
	assert.Equal(t, "4:00 PM", slots[7].Start)
}

func TestDaySlotsSkipsBookedStarts(t *testing.T) {
	appointments := []models.Appointment{
		{Date: "2030-01-07", Time: "9:00 AM", DurationMinutes: 30, Status: "pending"},
		{Date: "2030-01-07", Time: "1:00 PM", DurationMinutes: 30, Status: "confirmed"},
		{Date: "2030-01-07", Time: "2:00 PM", DurationMinutes: 30, Status: "cancelled"},
		{Date: "2030-01-08", Time: "10:00 AM", DurationMinutes: 30, Status: "pending"},
	}

	slots := DaySlots(SlotQuery{
		Settings:     models.DefaultSettings(),
		Date:         monday,
		Appointments: appointments,
		Now:          testNow(),
	})

	starts := make(map[string]bool)
	for _, s := range slots {
		starts[s.Start] = true
	}

	assert.Len(t, slots, 14)
	assert.False(t, starts["9:00 AM"], "pending booking must block its slot")
	assert.False(t, starts["1:00 PM"], "confirmed booking must block its slot")
	assert.True(t, starts["2:00 PM"], "cancelled booking must not block its slot")
	assert.True(t, starts["10:00 AM"], "other days must not block this one")
}

func TestDaySlotsTodayFiltersPastTimes(t *testing.T) {
	now := time.Date(2030, 1, 7, 13, 0, 0, 0, time.UTC)

	slots := DaySlots(SlotQuery{
		Settings: models.DefaultSettings(),
		Date:     monday,
		Now:      now,
	})

	// 1:00 PM itself is not strictly in the future; 1:30 PM onward is.
	require.NotEmpty(t, slots)
	assert.Equal(t, "1:30 PM", slots[0].Start)
	assert.Len(t, slots, 7)
}

func TestMonthDatesSkipsDisabledAndPast(t *testing.T) {
	settings := models.DefaultSettings()
	now := time.Date(2030, 1, 15, 10, 0, 0, 0, time.UTC)

	dates := MonthDates(settings, 2030, time.January, now, time.UTC)

	for _, d := range dates {
		assert.Greater(t, d, "2030-01-15", "today and earlier must be excluded")
		parsed, err := time.Parse("2006-01-02", d)
		require.NoError(t, err)
		assert.NotEqual(t, time.Saturday, parsed.Weekday())
		assert.NotEqual(t, time.Sunday, parsed.Weekday())
	}

	// Jan 16-31 2030 contains 12 weekdays.
	assert.Len(t, dates, 12)
}

func TestMonthDatesAllDisabled(t *testing.T) {
	settings := models.DefaultSettings()
	for _, day := range models.Weekdays {
		wd := settings.WorkingHours[day]
		wd.Enabled = false
		settings.WorkingHours[day] = wd
	}

	assert.Empty(t, MonthDates(settings, 2030, time.January, testNow(), time.UTC))
}

func TestEnabledServicesFallback(t *testing.T) {
	settings := models.DefaultSettings()
	settings.ServiceTypes = nil

	services := EnabledServices(settings)
	require.Len(t, services, 1)
	assert.Equal(t, "general", services[0].ID)
}

func TestEnabledDurationsFiltering(t *testing.T) {
	settings := models.DefaultSettings()
	settings.Durations = []models.DurationOption{
		{Minutes: 30, Enabled: true, Label: "30 minutes"},
		{Minutes: 60, Enabled: false, Label: "1 hour"},
	}

	durations := EnabledDurations(settings)
	require.Len(t, durations, 1)
	assert.Equal(t, 30, durations[0].Minutes)
}

func TestResolveService(t *testing.T) {
	settings := models.DefaultSettings()
	settings.ServiceTypes = []models.ServiceType{
		{ID: "cut", Name: "Haircut", Enabled: true},
		{ID: "color", Name: "Coloring", Enabled: false},
	}

	assert.Equal(t, "Haircut", ResolveService(settings, "cut").Name)
	// Disabled and unknown ids both fall back to the first enabled one.
	assert.Equal(t, "cut", ResolveService(settings, "color").ID)
	assert.Equal(t, "cut", ResolveService(settings, "nope").ID)
	assert.Equal(t, "cut", ResolveService(settings, "").ID)
}
