package booking

import (
	"context"

	"github.com/craftfolio/booking-engine/internal/models"
)

// Repository is the tenant-scoped persistence the engine runs against.
// Implementations must make CreateAppointment atomic with respect to
// its guard: the guard re-runs against the freshly read list whenever
// the write has to be retried.
type Repository interface {
	GetSettings(ctx context.Context, tenantID string) (*models.TenantSettings, error)
	SaveSettings(ctx context.Context, tenantID string, settings *models.TenantSettings) error

	ListAppointments(ctx context.Context, tenantID string) ([]models.Appointment, error)

	// CreateAppointment appends ap to the tenant's list if guard
	// accepts the current list. Guard errors abort the write and are
	// returned unchanged.
	CreateAppointment(ctx context.Context, tenantID string, ap *models.Appointment, guard func(existing []models.Appointment) error) error

	// MutateAppointment applies fn to the appointment with the given id
	// and persists the list, returning the mutated copy.
	MutateAppointment(ctx context.Context, tenantID, id string, fn func(ap *models.Appointment) error) (*models.Appointment, error)

	// PruneAppointments keeps only the appointments keep accepts and
	// reports how many were dropped.
	PruneAppointments(ctx context.Context, tenantID string, keep func(ap models.Appointment) bool) (int, error)
}
