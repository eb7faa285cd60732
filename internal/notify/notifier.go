package notify

// Message is the narrow contract with the mail transport.
type Message struct {
	To      string
	ToName  string
	Subject string
	Text    string
	HTML    string
}

type Service interface {
	Send(msg Message) error
}
