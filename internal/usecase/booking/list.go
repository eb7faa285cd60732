package booking

import (
	"context"
	"sort"

	domain "github.com/craftfolio/booking-engine/internal/domain/booking"
	"github.com/craftfolio/booking-engine/internal/httperr"
	"github.com/craftfolio/booking-engine/internal/models"
)

type ListInput struct {
	TenantID  string
	StartDate string // inclusive, optional
	EndDate   string // inclusive, optional
}

type List struct {
	repo domain.Repository
}

func NewList(repo domain.Repository) *List {
	return &List{repo: repo}
}

// Execute filters by inclusive date range. ISO dates compare
// lexicographically, so plain string comparison is safe here.
func (uc *List) Execute(
	ctx context.Context,
	in ListInput,
) ([]models.Appointment, error) {

	if in.TenantID == "" {
		return nil, httperr.Validation("missing_tenant", "Tenant is required.")
	}

	all, err := uc.repo.ListAppointments(ctx, in.TenantID)
	if err != nil {
		return nil, err
	}

	out := make([]models.Appointment, 0, len(all))
	for _, ap := range all {
		if in.StartDate != "" && ap.Date < in.StartDate {
			continue
		}
		if in.EndDate != "" && ap.Date > in.EndDate {
			continue
		}
		out = append(out, ap)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		ti, errI := domain.ParseClock(out[i].Time)
		tj, errJ := domain.ParseClock(out[j].Time)
		if errI != nil || errJ != nil {
			return out[i].Time < out[j].Time
		}
		return ti < tj
	})

	return out, nil
}
