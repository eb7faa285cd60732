package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/craftfolio/booking-engine/internal/httperr"
	"github.com/craftfolio/booking-engine/internal/httpresp"
	ucBooking "github.com/craftfolio/booking-engine/internal/usecase/booking"
)

// BookingHandler serves the anonymous visitor surface: booking, the
// sanitized list a booking widget renders from, and cancel-by-id.
type BookingHandler struct {
	book   *ucBooking.Book
	list   *ucBooking.List
	cancel *ucBooking.Cancel
}

func NewBookingHandler(
	book *ucBooking.Book,
	list *ucBooking.List,
	cancel *ucBooking.Cancel,
) *BookingHandler {
	return &BookingHandler{
		book:   book,
		list:   list,
		cancel: cancel,
	}
}

type CreateBookingRequest struct {
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	DurationMinutes int    `json:"duration_minutes"`
	ServiceID       string `json:"service_id"`

	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	Notes         string `json:"notes"`
}

// PublicAppointment is what anonymous callers see: enough to gray out
// busy slots, nothing about the customer.
type PublicAppointment struct {
	ID              string `json:"id"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	DurationMinutes int    `json:"duration_minutes"`
	Status          string `json:"status"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	tenantID := c.Param("tenant")

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Date, time and customer name/email/phone are required.")
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), ucBooking.BookInput{
		TenantID:        tenantID,
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

	httpresp.Created(c, ap)
}

func (h *BookingHandler) List(c *gin.Context) {
	tenantID := c.Param("tenant")

	appointments, err := h.list.Execute(c.Request.Context(), ucBooking.ListInput{
		TenantID:  tenantID,
		StartDate: c.Query("start"),
		EndDate:   c.Query("end"),
	})
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	out := make([]PublicAppointment, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, PublicAppointment{
			ID:              ap.ID,
			Date:            ap.Date,
			Time:            ap.Time,
			DurationMinutes: ap.DurationMinutes,
			Status:          ap.Status,
		})
	}

	httpresp.List(c, out)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	tenantID := c.Param("tenant")
	id := c.Param("id")

	if _, err := h.cancel.Execute(c.Request.Context(), tenantID, id); err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.Ack(c)
}
