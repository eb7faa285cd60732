package notify

import (
	"fmt"

	"github.com/craftfolio/booking-engine/internal/models"
)

// BookingRequested builds the customer confirmation-request mail plus
// the owner new-request mail. The owner message is skipped when the
// tenant has no notification address configured.
func BookingRequested(settings *models.TenantSettings, ap *models.Appointment) []Message {
	when := fmt.Sprintf("%s at %s", ap.Date, ap.Time)

	msgs := []Message{{
		To:      ap.Customer.Email,
		ToName:  ap.Customer.Name,
		Subject: "Your appointment request was received",
		Text: fmt.Sprintf(
			"Hi %s, we received your request for %s (%s). You will get another email once it is confirmed.",
			ap.Customer.Name, when, ap.Service.Name,
		),
		HTML: fmt.Sprintf(
			"<p>Hi %s,</p><p>We received your request for <b>%s</b> (%s). You will get another email once it is confirmed.</p>",
			ap.Customer.Name, when, ap.Service.Name,
		),
	}}

	if settings.NotifyEmail != "" {
		msgs = append(msgs, Message{
			To:      settings.NotifyEmail,
			Subject: "New appointment request",
			Text: fmt.Sprintf(
				"%s (%s, %s) requested %s on %s.",
				ap.Customer.Name, ap.Customer.Email, ap.Customer.Phone, ap.Service.Name, when,
			),
			HTML: fmt.Sprintf(
				"<p><b>%s</b> (%s, %s) requested %s on <b>%s</b>.</p>",
				ap.Customer.Name, ap.Customer.Email, ap.Customer.Phone, ap.Service.Name, when,
			),
		})
	}

	return msgs
}

func BookingConfirmed(ap *models.Appointment) Message {
	when := fmt.Sprintf("%s at %s", ap.Date, ap.Time)

	return Message{
		To:      ap.Customer.Email,
		ToName:  ap.Customer.Name,
		Subject: "Your appointment is confirmed",
		Text: fmt.Sprintf(
			"Hi %s, your appointment on %s (%s) is confirmed.",
			ap.Customer.Name, when, ap.Service.Name,
		),
		HTML: fmt.Sprintf(
			"<p>Hi %s,</p><p>Your appointment on <b>%s</b> (%s) is confirmed.</p>",
			ap.Customer.Name, when, ap.Service.Name,
		),
	}
}

func BookingCancelled(ap *models.Appointment) Message {
	when := fmt.Sprintf("%s at %s", ap.Date, ap.Time)

	return Message{
		To:      ap.Customer.Email,
		ToName:  ap.Customer.Name,
		Subject: "Your appointment was cancelled",
		Text: fmt.Sprintf(
			"Hi %s, your appointment on %s (%s) was cancelled.",
			ap.Customer.Name, when, ap.Service.Name,
		),
		HTML: fmt.Sprintf(
			"<p>Hi %s,</p><p>Your appointment on <b>%s</b> (%s) was cancelled.</p>",
			ap.Customer.Name, when, ap.Service.Name,
		),
	}
}
