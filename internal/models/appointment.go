package models

import "time"

type ServiceRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes,omitempty"`
}

type Appointment struct {
	ID string `json:"id"`

	Date            string `json:"date"` // "2006-01-02"
	Time            string `json:"time"` // "9:00 AM"
	DurationMinutes int    `json:"duration_minutes"`

	Service  ServiceRef `json:"service"`
	Customer Customer   `json:"customer"`

	Status string `json:"status"`

	CreatedAt   time.Time  `json:"created_at"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}
