package booking

import (
	"context"

	domain "github.com/craftfolio/booking-engine/internal/domain/booking"
)

type PendingCount struct {
	repo domain.Repository
}

func NewPendingCount(repo domain.Repository) *PendingCount {
	return &PendingCount{repo: repo}
}

func (uc *PendingCount) Execute(ctx context.Context, tenantID string) (int, error) {
	all, err := uc.repo.ListAppointments(ctx, tenantID)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, ap := range all {
		if ap.Status == string(domain.StatusPending) {
			count++
		}
	}
	return count, nil
}
