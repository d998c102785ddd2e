package notify

import (
	"context"
	"fmt"
	netmail "net/mail"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"modernshop/internal/config"
	"modernshop/internal/domain"
)

type sendgridClient interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// SendGrid emails the store manager through the SendGrid v3 API.
type SendGrid struct {
	client sendgridClient
	from   string
	to     string
}

func NewSendGrid(cfg config.NotifyConfig) *SendGrid {
	return &SendGrid{client: sendgrid.NewSendClient(cfg.SendGridAPIKey), from: cfg.From, to: cfg.ManagerEmail}
}

func (s *SendGrid) OrderCreated(ctx context.Context, order domain.Order) error {
	msg, err := ComposeOrderEmail(order, s.from, s.to)
	if err != nil {
		return err
	}
	from, err := parseAddress(msg.From)
	if err != nil {
		return err
	}
	to, err := parseAddress(msg.To)
	if err != nil {
		return err
	}

	message := mail.NewSingleEmail(from, msg.Subject, to, msg.Text, msg.HTML)
	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send order %d: %w", order.ID, err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send order %d: status=%d body=%s", order.ID, resp.StatusCode, resp.Body)
	}
	return nil
}

func parseAddress(s string) (*mail.Email, error) {
	addr, err := netmail.ParseAddress(s)
	if err != nil {
		return nil, fmt.Errorf("parse address %q: %w", s, err)
	}
	return mail.NewEmail(addr.Name, addr.Address), nil
}
