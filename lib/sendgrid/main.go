package sendgrid

import (
	"fmt"

	"github.com/pkg/errors"
	sendgridlib "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Sendgrid is the single-operation email sender the services depend on
type Sendgrid interface {
	SendEmail(to, subject, htmlBody string) error
}

type client struct {
	apiKey    string
	fromName  string
	fromEmail string
}

// NewSendgrid configures a sendgrid client with the sender identity
func NewSendgrid(apiKey, fromName, fromEmail string) Sendgrid {
	return &client{
		apiKey:    apiKey,
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

// SendEmail delivers a single html email through the sendgrid API
func (c *client) SendEmail(to, subject, htmlBody string) error {
	from := mail.NewEmail(c.fromName, c.fromEmail)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, "", htmlBody)

	api := sendgridlib.NewSendClient(c.apiKey)
	resp, err := api.Send(message)
	if err != nil {
		return errors.Wrap(err, "sendgrid send")
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send: unexpected status %d", resp.StatusCode)
	}
	return nil
}
