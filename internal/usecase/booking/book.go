package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/craftfolio/booking-engine/internal/domain/booking"
	"github.com/craftfolio/booking-engine/internal/httperr"
	"github.com/craftfolio/booking-engine/internal/models"
	"github.com/craftfolio/booking-engine/internal/notify"
	"github.com/craftfolio/booking-engine/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type BookInput struct {
	TenantID string

	Date            string // "2006-01-02"
	Time            string // "9:00 AM"
	DurationMinutes int    // 0 means tenant default
	ServiceID       string

	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	CustomerNotes string
}

// ======================================================
// USE CASE
// ======================================================

// Book is the conflict resolver: it validates the request, re-checks
// interval overlap against the freshly read appointment list inside
// the store's conditional update, and only then appends the pending
// appointment. Notifications go out after the write commits and can
// never fail it.
type Book struct {
	repo     domain.Repository
	notifier *notify.Dispatcher
}

func NewBook(repo domain.Repository, notifier *notify.Dispatcher) *Book {
	return &Book{
		repo:     repo,
		notifier: notifier,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Book) Execute(
	ctx context.Context,
	in BookInput,
) (*models.Appointment, error) {

	if in.TenantID == "" {
		return nil, httperr.Validation("missing_tenant", "Tenant is required.")
	}
	if in.CustomerName == "" || in.CustomerEmail == "" || in.CustomerPhone == "" {
		return nil, httperr.Validation("missing_customer_fields", "Name, email and phone are required.")
	}

	settings, err := uc.repo.GetSettings(ctx, in.TenantID)
	if err != nil {
		return nil, err
	}

	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, httperr.Validation("invalid_date", "Date must look like 2024-01-31.")
	}

	reqStart, err := domain.ParseClock(in.Time)
	if err != nil {
		return nil, err
	}

	duration := in.DurationMinutes
	if duration <= 0 {
		duration = settings.DefaultDurationMinutes
	}
	if duration <= 0 {
		duration = 30
	}
	reqEnd := reqStart + duration

	now := timezone.NowIn(settings.Timezone)

	ap := &models.Appointment{
		ID:              uuid.NewString(),
		Date:            in.Date,
		Time:            domain.FormatClock(reqStart),
		DurationMinutes: duration,
		Service:         domain.ResolveService(settings, in.ServiceID),
		Customer: models.Customer{
			Name:  in.CustomerName,
			Email: in.CustomerEmail,
			Phone: in.CustomerPhone,
			Notes: in.CustomerNotes,
		},
		Status:    string(domain.InitialStatus()),
		CreatedAt: now,
	}

	guard := func(existing []models.Appointment) error {
		for _, b := range existing {
			if b.Date != in.Date || b.Status == string(domain.StatusCancelled) {
				continue
			}

			bStart, err := domain.ParseClock(b.Time)
			if err != nil {
				continue
			}
			bDuration := b.DurationMinutes
			if bDuration <= 0 {
				bDuration = 30
			}

			if domain.Overlaps(reqStart, reqEnd, bStart, bStart+bDuration) {
				return httperr.Conflict("slot_taken", "Slot no longer available.")
			}
		}
		return nil
	}

	if err := uc.repo.CreateAppointment(ctx, in.TenantID, ap, guard); err != nil {
		return nil, err
	}

	if uc.notifier != nil {
		for _, msg := range notify.BookingRequested(settings, ap) {
			uc.notifier.Dispatch(msg)
		}
	}

	return ap, nil
}
