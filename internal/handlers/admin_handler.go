package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/craftfolio/booking-engine/internal/httperr"
	"github.com/craftfolio/booking-engine/internal/httpresp"
	"github.com/craftfolio/booking-engine/internal/middleware"
	ucBooking "github.com/craftfolio/booking-engine/internal/usecase/booking"
)

// AdminHandler serves the operator surface behind the session+CSRF
// gate. The tenant id always comes from the authenticated context, not
// the raw path, so a handler can never act across tenants.
type AdminHandler struct {
	list         *ucBooking.List
	update       *ucBooking.Update
	confirm      *ucBooking.Confirm
	cancel       *ucBooking.Cancel
	pendingCount *ucBooking.PendingCount
	cleanup      *ucBooking.Cleanup
}

func NewAdminHandler(
	list *ucBooking.List,
	update *ucBooking.Update,
	confirm *ucBooking.Confirm,
	cancel *ucBooking.Cancel,
	pendingCount *ucBooking.PendingCount,
	cleanup *ucBooking.Cleanup,
) *AdminHandler {
	return &AdminHandler{
		list:         list,
		update:       update,
		confirm:      confirm,
		cancel:       cancel,
		pendingCount: pendingCount,
		cleanup:      cleanup,
	}
}

type UpdateAppointmentRequest struct {
	Date            *string `json:"date"`
	Time            *string `json:"time"`
	DurationMinutes *int    `json:"duration_minutes"`
	ServiceID       *string `json:"service_id"`
	CustomerName    *string `json:"customer_name"`
	CustomerEmail   *string `json:"customer_email"`
	CustomerPhone   *string `json:"customer_phone"`
	Notes           *string `json:"notes"`
}

func (h *AdminHandler) List(c *gin.Context) {
	tenantID := c.MustGet(middleware.ContextTenantID).(string)

	appointments, err := h.list.Execute(c.Request.Context(), ucBooking.ListInput{
		TenantID:  tenantID,
		StartDate: c.Query("start"),
		EndDate:   c.Query("end"),
	})
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.List(c, appointments)
}

func (h *AdminHandler) Update(c *gin.Context) {
	tenantID := c.MustGet(middleware.ContextTenantID).(string)
	id := c.Param("id")

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Patch payload is malformed.")
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), tenantID, id, ucBooking.Patch{
		Date:            req.Date,
		Time:            req.Time,
		DurationMinutes: req.DurationMinutes,
		ServiceID:       req.ServiceID,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		CustomerNotes:   req.Notes,
	})
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AdminHandler) Confirm(c *gin.Context) {
	tenantID := c.MustGet(middleware.ContextTenantID).(string)
	id := c.Param("id")

	ap, err := h.confirm.Execute(c.Request.Context(), tenantID, id)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AdminHandler) Cancel(c *gin.Context) {
	tenantID := c.MustGet(middleware.ContextTenantID).(string)
	id := c.Param("id")

	ap, err := h.cancel.Execute(c.Request.Context(), tenantID, id)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AdminHandler) PendingCount(c *gin.Context) {
	tenantID := c.MustGet(middleware.ContextTenantID).(string)

	count, err := h.pendingCount.Execute(c.Request.Context(), tenantID)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"pending": count})
}

func (h *AdminHandler) Cleanup(c *gin.Context) {
	tenantID := c.MustGet(middleware.ContextTenantID).(string)

	removed, err := h.cleanup.Execute(c.Request.Context(), tenantID)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"removed": removed})
}
