package booking

import "github.com/craftfolio/booking-engine/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"

	// StatusPinned exempts an appointment from retention cleanup. No
	// transition produces it; it exists so manually edited records can
	// be kept past the retention window.
	StatusPinned Status = "pinned"
)

// ===============================
// Validations
// ===============================

func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.Conflict("invalid_state", "Appointment cannot be confirmed.")
	}
	return nil
}

func CanCancel(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.Conflict("invalid_state", "Appointment cannot be cancelled.")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
