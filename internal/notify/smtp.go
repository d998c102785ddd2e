package notify

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
	"modernshop/internal/config"
	"modernshop/internal/domain"
)

type mailDialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTP emails the store manager through an SMTP relay.
type SMTP struct {
	dialer mailDialer
	from   string
	to     string
}

func NewSMTP(cfg config.NotifyConfig) *SMTP {
	d := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	if cfg.SMTPSecure {
		d.SSL = true
	}
	return &SMTP{dialer: d, from: cfg.From, to: cfg.ManagerEmail}
}

func (s *SMTP) OrderCreated(ctx context.Context, order domain.Order) error {
	msg, err := ComposeOrderEmail(order, s.from, s.to)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Text)
	m.AddAlternative("text/html", msg.HTML)

	// gomail has no context support; the send goroutine finishes on its own
	// once the dial or write times out.
	done := make(chan error, 1)
	go func() { done <- s.dialer.DialAndSend(m) }()
	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp send order %d: %w", order.ID, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("smtp send order %d: %w", order.ID, ctx.Err())
	}
}
