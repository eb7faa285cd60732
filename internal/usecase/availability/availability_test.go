package availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftfolio/booking-engine/internal/httperr"
	"github.com/craftfolio/booking-engine/internal/infra/repository"
	"github.com/craftfolio/booking-engine/internal/models"
	"github.com/craftfolio/booking-engine/internal/store"
	ucBooking "github.com/craftfolio/booking-engine/internal/usecase/booking"
)

// 2030-01-07 is a Monday, comfortably in the future.
const futureMonday = "2030-01-07"

func TestDaySlotsFutureMonday(t *testing.T) {
	repo := repository.NewTenantStoreRepository(store.NewMemory())
	uc := NewGetDaySlots(repo)

	out, err := uc.Execute(context.Background(), DaySlotsInput{
		TenantID: "acme",
		Date:     futureMonday,
	})
	require.NoError(t, err)

	require.Len(t, out.Slots, 16)
	assert.Equal(t, "9:00 AM", out.Slots[0].Start)
	assert.Equal(t, "4:30 PM", out.Slots[15].Start)
	assert.NotEmpty(t, out.Durations)
	assert.NotEmpty(t, out.Services)
}

func TestDaySlotsInvalidInput(t *testing.T) {
	repo := repository.NewTenantStoreRepository(store.NewMemory())
	uc := NewGetDaySlots(repo)
	ctx := context.Background()

	_, err := uc.Execute(ctx, DaySlotsInput{TenantID: "acme", Date: "someday"})
	assert.True(t, httperr.Is(err, "invalid_date"))

	_, err = uc.Execute(ctx, DaySlotsInput{Date: futureMonday})
	assert.True(t, httperr.Is(err, "missing_tenant"))
}

func TestBookedSlotDisappearsAndRebookConflicts(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	repo := repository.NewTenantStoreRepository(kv)

	slots := NewGetDaySlots(repo)
	book := ucBooking.NewBook(repo, nil)

	in := ucBooking.BookInput{
		TenantID:      "acme",
		Date:          futureMonday,
		Time:          "9:00 AM",
		CustomerName:  "Jordan Miles",
		CustomerEmail: "jordan@example.com",
		CustomerPhone: "+1 555 0100",
	}
	_, err := book.Execute(ctx, in)
	require.NoError(t, err)

	out, err := slots.Execute(ctx, DaySlotsInput{TenantID: "acme", Date: futureMonday})
	require.NoError(t, err)

	require.Len(t, out.Slots, 15)
	for _, s := range out.Slots {
		assert.NotEqual(t, "9:00 AM", s.Start)
	}

	_, err = book.Execute(ctx, in)
	assert.Equal(t, httperr.KindConflict, httperr.KindOf(err))
}

func TestMonthDatesHonorWorkingDays(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewTenantStoreRepository(store.NewMemory())

	settings := models.DefaultSettings()
	for _, day := range models.Weekdays {
		wd := settings.WorkingHours[day]
		wd.Enabled = day == "monday"
		settings.WorkingHours[day] = wd
	}
	require.NoError(t, repo.SaveSettings(ctx, "acme", settings))

	uc := NewGetMonthDates(repo)

	dates, err := uc.Execute(ctx, MonthDatesInput{TenantID: "acme", Year: 2030, Month: 1})
	require.NoError(t, err)

	// Mondays in January 2030: 7th, 14th, 21st, 28th.
	assert.Equal(t, []string{"2030-01-07", "2030-01-14", "2030-01-21", "2030-01-28"}, dates)
}

func TestMonthDatesValidation(t *testing.T) {
	repo := repository.NewTenantStoreRepository(store.NewMemory())
	uc := NewGetMonthDates(repo)
	ctx := context.Background()

	_, err := uc.Execute(ctx, MonthDatesInput{TenantID: "acme", Year: 2030, Month: 13})
	assert.True(t, httperr.Is(err, "invalid_month"))

	_, err = uc.Execute(ctx, MonthDatesInput{TenantID: "acme", Year: 1900, Month: 5})
	assert.True(t, httperr.Is(err, "invalid_year"))
}
