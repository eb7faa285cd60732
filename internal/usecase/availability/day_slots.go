package availability

import (
	"context"
	"time"

	domain "github.com/craftfolio/booking-engine/internal/domain/booking"
	"github.com/craftfolio/booking-engine/internal/httperr"
	"github.com/craftfolio/booking-engine/internal/models"
	"github.com/craftfolio/booking-engine/internal/timezone"
)

type DaySlotsInput struct {
	TenantID        string
	Date            string // "2006-01-02"
	DurationMinutes int    // 0 means tenant default
}

type DaySlotsOutput struct {
	Date      string                  `json:"date"`
	Slots     []domain.TimeSlot       `json:"slots"`
	Durations []models.DurationOption `json:"durations"`
	Services  []models.ServiceType    `json:"services"`
}

type GetDaySlots struct {
	repo domain.Repository
}

func NewGetDaySlots(repo domain.Repository) *GetDaySlots {
	return &GetDaySlots{repo: repo}
}

func (uc *GetDaySlots) Execute(
	ctx context.Context,
	in DaySlotsInput,
) (*DaySlotsOutput, error) {

	if in.TenantID == "" {
		return nil, httperr.Validation("missing_tenant", "Tenant is required.")
	}

	settings, err := uc.repo.GetSettings(ctx, in.TenantID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(settings.Timezone)
	date, err := time.ParseInLocation("2006-01-02", in.Date, loc)
	if err != nil {
		return nil, httperr.Validation("invalid_date", "Date must look like 2024-01-31.")
	}

	appointments, err := uc.repo.ListAppointments(ctx, in.TenantID)
	if err != nil {
		return nil, err
	}

	slots := domain.DaySlots(domain.SlotQuery{
		Settings:        settings,
		Date:            date,
		DurationMinutes: in.DurationMinutes,
		Appointments:    appointments,
		Now:             timezone.NowIn(settings.Timezone),
	})

	return &DaySlotsOutput{
		Date:      in.Date,
		Slots:     slots,
		Durations: domain.EnabledDurations(settings),
		Services:  domain.EnabledServices(settings),
	}, nil
}
