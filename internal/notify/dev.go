package notify

import "github.com/craftfolio/booking-engine/internal/logger"

// DevMailer logs instead of sending. Used when no mail credentials are
// configured.
type DevMailer struct{}

func (DevMailer) Send(msg Message) error {
	logger.Info("dev mailer: would send email",
		"to", msg.To,
		"subject", msg.Subject,
	)
	return nil
}

var _ Service = DevMailer{}
