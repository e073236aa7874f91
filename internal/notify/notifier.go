package notify

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Notifier delivers customer-facing notifications. The notification
// worker drives it from contact and order events.
type Notifier interface {
	Notify(to, subject, body string) error
}

// ConsoleNotifier logs instead of sending. Default when no mail
// provider is configured.
type ConsoleNotifier struct{}

// NewConsole creates a ConsoleNotifier.
func NewConsole() *ConsoleNotifier {
	return &ConsoleNotifier{}
}

func (c *ConsoleNotifier) Notify(to, subject, body string) error {
	log.Printf("[notify] to=%s subject=%q :: %s", to, subject, body)
	return nil
}

// SendGridNotifier sends mail through SendGrid.
type SendGridNotifier struct {
	client   *sendgrid.Client
	from     string
	fromName string
}

// NewSendGrid creates a SendGridNotifier with the given API key and
// sender address.
func NewSendGrid(apiKey, from string) *SendGridNotifier {
	return &SendGridNotifier{
		client:   sendgrid.NewSendClient(apiKey),
		from:     from,
		fromName: "Panchmev",
	}
}

func (n *SendGridNotifier) Notify(to, subject, body string) error {
	msg := mail.NewSingleEmail(
		mail.NewEmail(n.fromName, n.from),
		subject,
		mail.NewEmail("", to),
		body,
		body,
	)
	resp, err := n.client.Send(msg)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}
	return nil
}
