package booking

import (
	"context"

	domain "github.com/craftfolio/booking-engine/internal/domain/booking"
	"github.com/craftfolio/booking-engine/internal/models"
	"github.com/craftfolio/booking-engine/internal/notify"
	"github.com/craftfolio/booking-engine/internal/timezone"
)

// Cancel serves both the admin path (behind the gate) and the public
// cancel-by-id path; the guard logic is identical.
type Cancel struct {
	repo     domain.Repository
	notifier *notify.Dispatcher
}

func NewCancel(repo domain.Repository, notifier *notify.Dispatcher) *Cancel {
	return &Cancel{
		repo:     repo,
		notifier: notifier,
	}
}

func (uc *Cancel) Execute(
	ctx context.Context,
	tenantID, appointmentID string,
) (*models.Appointment, error) {

	settings, err := uc.repo.GetSettings(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(settings.Timezone)

	ap, err := uc.repo.MutateAppointment(ctx, tenantID, appointmentID,
		func(ap *models.Appointment) error {
			return domain.Cancel(ap, now)
		})
	if err != nil {
		return nil, err
	}

	if uc.notifier != nil {
		uc.notifier.Dispatch(notify.BookingCancelled(ap))
	}

	return ap, nil
}
