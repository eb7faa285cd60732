package booking

import (
	"context"

	domain "github.com/craftfolio/booking-engine/internal/domain/booking"
	"github.com/craftfolio/booking-engine/internal/models"
	"github.com/craftfolio/booking-engine/internal/timezone"
)

const retentionMonths = 6

// Cleanup drops appointments dated before the retention window.
// Pinned appointments survive regardless of age.
type Cleanup struct {
	repo domain.Repository
}

func NewCleanup(repo domain.Repository) *Cleanup {
	return &Cleanup{repo: repo}
}

func (uc *Cleanup) Execute(ctx context.Context, tenantID string) (int, error) {
	settings, err := uc.repo.GetSettings(ctx, tenantID)
	if err != nil {
		return 0, err
	}

	cutoff := timezone.NowIn(settings.Timezone).
		AddDate(0, -retentionMonths, 0).
		Format("2006-01-02")

	return uc.repo.PruneAppointments(ctx, tenantID, func(ap models.Appointment) bool {
		if ap.Status == string(domain.StatusPinned) {
			return true
		}
		return ap.Date >= cutoff
	})
}
