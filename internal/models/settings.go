package models

import "time"

type WorkingDay struct {
	Start   string `json:"start"` // "09:00"
	End     string `json:"end"`   // "17:00"
	Enabled bool   `json:"enabled"`
}

type DurationOption struct {
	Minutes int    `json:"minutes"`
	Enabled bool   `json:"enabled"`
	Label   string `json:"label"`
}

type ServiceType struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

type TenantSettings struct {
	DefaultDurationMinutes int    `json:"default_duration_minutes"`
	BufferMinutes          int    `json:"buffer_minutes"`
	Timezone               string `json:"timezone"`
	NotifyEmail            string `json:"notify_email"`

	WorkingHours map[string]WorkingDay `json:"working_hours"`
	Durations    []DurationOption      `json:"durations"`
	ServiceTypes []ServiceType         `json:"service_types"`
}

// Weekdays holds the settings keys in calendar order, Monday first.
var Weekdays = []string{
	"monday", "tuesday", "wednesday", "thursday",
	"friday", "saturday", "sunday",
}

var weekdayKeys = map[time.Weekday]string{
	time.Monday:    "monday",
	time.Tuesday:   "tuesday",
	time.Wednesday: "wednesday",
	time.Thursday:  "thursday",
	time.Friday:    "friday",
	time.Saturday:  "saturday",
	time.Sunday:    "sunday",
}

func WeekdayKey(d time.Weekday) string {
	return weekdayKeys[d]
}

// DefaultSettings builds a fresh settings value for tenants that never
// saved one. A constructor, not a shared package variable, so one
// tenant's mutations can never leak into another's defaults.
func DefaultSettings() *TenantSettings {
	hours := make(map[string]WorkingDay, len(Weekdays))
	for _, day := range Weekdays {
		enabled := day != "saturday" && day != "sunday"
		hours[day] = WorkingDay{Start: "09:00", End: "17:00", Enabled: enabled}
	}

	return &TenantSettings{
		DefaultDurationMinutes: 30,
		BufferMinutes:          0,
		Timezone:               "UTC",
		WorkingHours:           hours,
		Durations: []DurationOption{
			{Minutes: 30, Enabled: true, Label: "30 minutes"},
			{Minutes: 60, Enabled: true, Label: "1 hour"},
		},
		ServiceTypes: []ServiceType{
			{ID: "general", Name: "General Appointment", Enabled: true},
		},
	}
}
