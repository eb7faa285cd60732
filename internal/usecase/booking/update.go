package booking

import (
	"context"
	"time"

	domain "github.com/craftfolio/booking-engine/internal/domain/booking"
	"github.com/craftfolio/booking-engine/internal/httperr"
	"github.com/craftfolio/booking-engine/internal/models"
	"github.com/craftfolio/booking-engine/internal/timezone"
)

// Patch carries the fields an operator may edit. Status is not among
// them; transitions go through Confirm and Cancel.
type Patch struct {
	Date            *string
	Time            *string
	DurationMinutes *int
	ServiceID       *string
	CustomerName    *string
	CustomerEmail   *string
	CustomerPhone   *string
	CustomerNotes   *string
}

type Update struct {
	repo domain.Repository
}

func NewUpdate(repo domain.Repository) *Update {
	return &Update{repo: repo}
}

func (uc *Update) Execute(
	ctx context.Context,
	tenantID, appointmentID string,
	patch Patch,
) (*models.Appointment, error) {

	settings, err := uc.repo.GetSettings(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	if patch.Date != nil {
		if _, err := time.Parse("2006-01-02", *patch.Date); err != nil {
			return nil, httperr.Validation("invalid_date", "Date must look like 2024-01-31.")
		}
	}

	var newTime string
	if patch.Time != nil {
		start, err := domain.ParseClock(*patch.Time)
		if err != nil {
			return nil, err
		}
		newTime = domain.FormatClock(start)
	}

	now := timezone.NowIn(settings.Timezone)

	return uc.repo.MutateAppointment(ctx, tenantID, appointmentID,
		func(ap *models.Appointment) error {
			if patch.Date != nil {
				ap.Date = *patch.Date
			}
			if patch.Time != nil {
				ap.Time = newTime
			}
			if patch.DurationMinutes != nil && *patch.DurationMinutes > 0 {
				ap.DurationMinutes = *patch.DurationMinutes
			}
			if patch.ServiceID != nil {
				ap.Service = domain.ResolveService(settings, *patch.ServiceID)
			}
			if patch.CustomerName != nil {
				ap.Customer.Name = *patch.CustomerName
			}
			if patch.CustomerEmail != nil {
				ap.Customer.Email = *patch.CustomerEmail
			}
			if patch.CustomerPhone != nil {
				ap.Customer.Phone = *patch.CustomerPhone
			}
			if patch.CustomerNotes != nil {
				ap.Customer.Notes = *patch.CustomerNotes
			}

			domain.Touch(ap, now)
			return nil
		})
}
