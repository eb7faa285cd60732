package notify

import "github.com/craftfolio/booking-engine/internal/logger"

// Dispatcher decouples mail delivery from the booking transaction.
// Enqueueing never blocks; a full queue drops the message. Delivery
// failures are logged and go nowhere else.
type Dispatcher struct {
	mailer Service
	queue  chan Message
}

func NewDispatcher(mailer Service) *Dispatcher {
	d := &Dispatcher{
		mailer: mailer,
		queue:  make(chan Message, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for msg := range d.queue {
		if err := d.mailer.Send(msg); err != nil {
			logger.Warn("notification failed",
				"to", msg.To,
				"subject", msg.Subject,
				"err", err.Error(),
			)
		}
	}
}

func (d *Dispatcher) Dispatch(msg Message) {
	if msg.To == "" {
		return
	}

	select {
	case d.queue <- msg:
	default:
		logger.Warn("notification queue full, dropping message", "to", msg.To)
	}
}
