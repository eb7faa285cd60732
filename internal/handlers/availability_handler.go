package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/craftfolio/booking-engine/internal/httperr"
	"github.com/craftfolio/booking-engine/internal/httpresp"
	ucAvailability "github.com/craftfolio/booking-engine/internal/usecase/availability"
)

type AvailabilityHandler struct {
	daySlots   *ucAvailability.GetDaySlots
	monthDates *ucAvailability.GetMonthDates
}

func NewAvailabilityHandler(
	daySlots *ucAvailability.GetDaySlots,
	monthDates *ucAvailability.GetMonthDates,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		daySlots:   daySlots,
		monthDates: monthDates,
	}
}

func (h *AvailabilityHandler) ByDate(c *gin.Context) {
	tenantID := c.Param("tenant")
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	duration := 0
	if d := c.Query("duration"); d != "" {
		parsed, err := strconv.Atoi(d)
		if err != nil || parsed <= 0 {
			httperr.BadRequest(c, "invalid_duration", "Duration must be a positive number of minutes.")
			return
		}
		duration = parsed
	}

	out, err := h.daySlots.Execute(c.Request.Context(), ucAvailability.DaySlotsInput{
		TenantID:        tenantID,
		Date:            dateStr,
		DurationMinutes: duration,
	})
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.OK(c, out)
}

func (h *AvailabilityHandler) ByMonth(c *gin.Context) {
	tenantID := c.Param("tenant")

	yearStr := c.Query("year")
	monthStr := c.Query("month")
	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "Year and month are required.")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_year", "Year must be a number.")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_month", "Month must be a number.")
		return
	}

	dates, err := h.monthDates.Execute(c.Request.Context(), ucAvailability.MonthDatesInput{
		TenantID: tenantID,
		Year:     year,
		Month:    month,
	})
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.List(c, dates)
}
