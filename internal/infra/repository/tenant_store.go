package repository

import (
	"context"
	"encoding/json"
	"errors"

	domain "github.com/craftfolio/booking-engine/internal/domain/booking"
	"github.com/craftfolio/booking-engine/internal/httperr"
	"github.com/craftfolio/booking-engine/internal/models"
	"github.com/craftfolio/booking-engine/internal/store"
)

// TenantStoreRepository persists settings and appointments as whole
// JSON values in the key-value store, one key per tenant and concern.
type TenantStoreRepository struct {
	store store.Store
}

func NewTenantStoreRepository(s store.Store) *TenantStoreRepository {
	return &TenantStoreRepository{store: s}
}

func settingsKey(tenantID string) string {
	return "tenant:" + tenantID + ":settings"
}

func appointmentsKey(tenantID string) string {
	return "tenant:" + tenantID + ":appointments"
}

// --------------------------------------------------
// Settings
// --------------------------------------------------

func (r *TenantStoreRepository) GetSettings(
	ctx context.Context,
	tenantID string,
) (*models.TenantSettings, error) {

	b, err := r.store.Get(ctx, settingsKey(tenantID))
	if errors.Is(err, store.ErrNotFound) {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return nil, httperr.Unavailable("store_unreachable", "Could not load settings.")
	}

	var settings models.TenantSettings
	if err := json.Unmarshal(b, &settings); err != nil {
		return nil, httperr.Unavailable("settings_corrupt", "Stored settings are unreadable.")
	}

	return &settings, nil
}

func (r *TenantStoreRepository) SaveSettings(
	ctx context.Context,
	tenantID string,
	settings *models.TenantSettings,
) error {

	b, err := json.Marshal(settings)
	if err != nil {
		return err
	}

	if err := r.store.Set(ctx, settingsKey(tenantID), b); err != nil {
		return httperr.Unavailable("store_unreachable", "Could not save settings.")
	}
	return nil
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *TenantStoreRepository) ListAppointments(
	ctx context.Context,
	tenantID string,
) ([]models.Appointment, error) {

	b, err := r.store.Get(ctx, appointmentsKey(tenantID))
	if errors.Is(err, store.ErrNotFound) {
		return []models.Appointment{}, nil
	}
	if err != nil {
		return nil, httperr.Unavailable("store_unreachable", "Could not load appointments.")
	}

	return decodeAppointments(b)
}

func (r *TenantStoreRepository) CreateAppointment(
	ctx context.Context,
	tenantID string,
	ap *models.Appointment,
	guard func(existing []models.Appointment) error,
) error {

	err := r.store.Update(ctx, appointmentsKey(tenantID), func(old []byte) ([]byte, error) {
		existing, err := decodeAppointments(old)
		if err != nil {
			return nil, err
		}

		if guard != nil {
			if err := guard(existing); err != nil {
				return nil, err
			}
		}

		return json.Marshal(append(existing, *ap))
	})

	if errors.Is(err, store.ErrContention) {
		return httperr.Unavailable("store_contention", "Could not save the booking, try again.")
	}
	return err
}

func (r *TenantStoreRepository) MutateAppointment(
	ctx context.Context,
	tenantID, id string,
	fn func(ap *models.Appointment) error,
) (*models.Appointment, error) {

	var mutated models.Appointment

	err := r.store.Update(ctx, appointmentsKey(tenantID), func(old []byte) ([]byte, error) {
		existing, err := decodeAppointments(old)
		if err != nil {
			return nil, err
		}

		idx := -1
		for i := range existing {
			if existing[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, httperr.NotFound("appointment_not_found", "Appointment not found.")
		}

		if err := fn(&existing[idx]); err != nil {
			return nil, err
		}

		mutated = existing[idx]
		return json.Marshal(existing)
	})

	if errors.Is(err, store.ErrContention) {
		return nil, httperr.Unavailable("store_contention", "Could not update the appointment, try again.")
	}
	if err != nil {
		return nil, err
	}
	return &mutated, nil
}

func (r *TenantStoreRepository) PruneAppointments(
	ctx context.Context,
	tenantID string,
	keep func(ap models.Appointment) bool,
) (int, error) {

	removed := 0

	err := r.store.Update(ctx, appointmentsKey(tenantID), func(old []byte) ([]byte, error) {
		existing, err := decodeAppointments(old)
		if err != nil {
			return nil, err
		}

		kept := existing[:0]
		for _, ap := range existing {
			if keep(ap) {
				kept = append(kept, ap)
			}
		}

		removed = len(existing) - len(kept)
		if removed == 0 {
			return nil, store.ErrNoChange
		}

		return json.Marshal(kept)
	})

	if errors.Is(err, store.ErrContention) {
		return 0, httperr.Unavailable("store_contention", "Could not clean up appointments, try again.")
	}
	if err != nil {
		return 0, err
	}
	return removed, nil
}

func decodeAppointments(b []byte) ([]models.Appointment, error) {
	if len(b) == 0 {
		return []models.Appointment{}, nil
	}

	var list []models.Appointment
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, httperr.Unavailable("appointments_corrupt", "Stored appointments are unreadable.")
	}
	return list, nil
}

// Compile-time check
var _ domain.Repository = (*TenantStoreRepository)(nil)
