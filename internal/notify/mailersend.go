package notify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mailersend/mailersend-go"
)

type MailerSend struct {
	client *mailersend.Mailersend
	from   mailersend.From
}

func NewMailerSend(apiKey, fromName, fromEmail string) (*MailerSend, error) {
	if apiKey == "" || fromEmail == "" {
		return nil, errors.New("mailersend: missing MAILERSEND_API_KEY or MAILER_FROM_EMAIL")
	}

	return &MailerSend{
		client: mailersend.NewMailersend(apiKey),
		from: mailersend.From{
			Name:  fromName,
			Email: fromEmail,
		},
	}, nil
}

func (m *MailerSend) Send(msg Message) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mail := m.client.Email.NewMessage()
	mail.SetFrom(m.from)
	mail.SetRecipients([]mailersend.Recipient{{Name: msg.ToName, Email: msg.To}})
	mail.SetSubject(msg.Subject)
	if strings.TrimSpace(msg.Text) != "" {
		mail.SetText(msg.Text)
	}
	if strings.TrimSpace(msg.HTML) != "" {
		mail.SetHTML(msg.HTML)
	}

	res, err := m.client.Email.Send(ctx, mail)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("mailersend: status=%d body=%s", res.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}

var _ Service = (*MailerSend)(nil)
