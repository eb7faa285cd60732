package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/craftfolio/booking-engine/internal/domain/booking"
	"github.com/craftfolio/booking-engine/internal/httperr"
	"github.com/craftfolio/booking-engine/internal/httpresp"
	"github.com/craftfolio/booking-engine/internal/models"
	"github.com/craftfolio/booking-engine/internal/timezone"
)

type SettingsHandler struct {
	repo domain.Repository
}

func NewSettingsHandler(repo domain.Repository) *SettingsHandler {
	return &SettingsHandler{repo: repo}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	tenantID := c.Param("tenant")
	if tenantID == "" {
		httperr.BadRequest(c, "missing_tenant", "Tenant is required.")
		return
	}

	settings, err := h.repo.GetSettings(c.Request.Context(), tenantID)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.OK(c, settings)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	tenantID := c.Param("tenant")

	var settings models.TenantSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		httperr.BadRequest(c, "invalid_request", "Settings payload is malformed.")
		return
	}

	if err := validateSettings(&settings); err != nil {
		httperr.WriteError(c, err)
		return
	}

	if err := h.repo.SaveSettings(c.Request.Context(), tenantID, &settings); err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.Ack(c)
}

// validateSettings rejects shapes that would silently break slot math
// later. An enabled day whose start is not before its end is allowed
// through; it degrades to an empty slot list downstream.
func validateSettings(s *models.TenantSettings) error {
	if s.DefaultDurationMinutes <= 0 {
		return httperr.Validation("invalid_duration", "Default duration must be positive.")
	}
	if s.BufferMinutes < 0 {
		return httperr.Validation("invalid_buffer", "Buffer cannot be negative.")
	}
	if s.Timezone != "" && !timezone.IsValid(s.Timezone) {
		return httperr.Validation("invalid_timezone", "Unknown timezone.")
	}

	valid := make(map[string]bool, len(models.Weekdays))
	for _, day := range models.Weekdays {
		valid[day] = true
	}

	for day, hours := range s.WorkingHours {
		if !valid[day] {
			return httperr.Validation("invalid_weekday", "Unknown weekday \""+day+"\".")
		}
		if !hours.Enabled {
			continue
		}
		if _, err := domain.ParseClock(hours.Start); err != nil {
			return httperr.Validation("invalid_working_hours", "Bad start time for "+day+".")
		}
		if _, err := domain.ParseClock(hours.End); err != nil {
			return httperr.Validation("invalid_working_hours", "Bad end time for "+day+".")
		}
	}

	for _, d := range s.Durations {
		if d.Minutes <= 0 {
			return httperr.Validation("invalid_duration", "Duration options must be positive.")
		}
	}

	for _, svc := range s.ServiceTypes {
		if svc.ID == "" {
			return httperr.Validation("invalid_service", "Service types need an id.")
		}
	}

	return nil
}
