package booking

import (
	"context"

	domain "github.com/craftfolio/booking-engine/internal/domain/booking"
	"github.com/craftfolio/booking-engine/internal/models"
	"github.com/craftfolio/booking-engine/internal/notify"
	"github.com/craftfolio/booking-engine/internal/timezone"
)

type Confirm struct {
	repo     domain.Repository
	notifier *notify.Dispatcher
}

func NewConfirm(repo domain.Repository, notifier *notify.Dispatcher) *Confirm {
	return &Confirm{
		repo:     repo,
		notifier: notifier,
	}
}

func (uc *Confirm) Execute(
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
			return domain.Confirm(ap, now)
		})
	if err != nil {
		return nil, err
	}

	if uc.notifier != nil {
		uc.notifier.Dispatch(notify.BookingConfirmed(ap))
	}

	return ap, nil
}
