package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftfolio/booking-engine/internal/httperr"
	"github.com/craftfolio/booking-engine/internal/models"
)

func TestConfirmPending(t *testing.T) {
	now := time.Date(2030, 1, 7, 10, 0, 0, 0, time.UTC)
	ap := &models.Appointment{Status: string(StatusPending)}

	require.NoError(t, Confirm(ap, now))
	assert.Equal(t, string(StatusConfirmed), ap.Status)
	require.NotNil(t, ap.ConfirmedAt)
	assert.Equal(t, now, *ap.ConfirmedAt)
}

func TestConfirmRejectsNonPending(t *testing.T) {
	now := time.Now()

	for _, status := range []Status{StatusConfirmed, StatusCancelled} {
		ap := &models.Appointment{Status: string(status)}
		err := Confirm(ap, now)
		require.Error(t, err)
		assert.True(t, httperr.Is(err, "invalid_state"))
		assert.Equal(t, string(status), ap.Status)
	}
}

func TestCancelPendingAndConfirmed(t *testing.T) {
	now := time.Now()

	for _, status := range []Status{StatusPending, StatusConfirmed} {
		ap := &models.Appointment{Status: string(status)}
		require.NoError(t, Cancel(ap, now))
		assert.Equal(t, string(StatusCancelled), ap.Status)
		require.NotNil(t, ap.CancelledAt)
	}
}

func TestCancelRejectsCancelled(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusCancelled)}
	err := Cancel(ap, time.Now())
	require.Error(t, err)
	assert.True(t, httperr.Is(err, "invalid_state"))
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus())
}
