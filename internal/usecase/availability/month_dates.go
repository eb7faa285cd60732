package availability

import (
	"context"
	"time"

	domain "github.com/craftfolio/booking-engine/internal/domain/booking"
	"github.com/craftfolio/booking-engine/internal/httperr"
	"github.com/craftfolio/booking-engine/internal/timezone"
)

type MonthDatesInput struct {
	TenantID string
	Year     int
	Month    int
}

type GetMonthDates struct {
	repo domain.Repository
}

func NewGetMonthDates(repo domain.Repository) *GetMonthDates {
	return &GetMonthDates{repo: repo}
}

func (uc *GetMonthDates) Execute(
	ctx context.Context,
	in MonthDatesInput,
) ([]string, error) {

	if in.TenantID == "" {
		return nil, httperr.Validation("missing_tenant", "Tenant is required.")
	}
	if in.Month < 1 || in.Month > 12 {
		return nil, httperr.Validation("invalid_month", "Month must be 1-12.")
	}
	if in.Year < 2000 || in.Year > 2100 {
		return nil, httperr.Validation("invalid_year", "Year out of range.")
	}

	settings, err := uc.repo.GetSettings(ctx, in.TenantID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(settings.Timezone)
	dates := domain.MonthDates(
		settings,
		in.Year,
		time.Month(in.Month),
		timezone.NowIn(settings.Timezone),
		loc,
	)

	return dates, nil
}
