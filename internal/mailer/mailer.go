package mailer

import (
	"context"
	"fmt"
	"log/slog"

	"storefront-bff/internal/config"
	"storefront-bff/internal/models"

	"github.com/resend/resend-go/v2"
)

// Mailer relays form submissions to the shop owner through Resend.
type Mailer struct {
	client *resend.Client
	cfg    config.MailConfig
	logger *slog.Logger
}

func New(cfg config.MailConfig, logger *slog.Logger) *Mailer {
	return &Mailer{
		client: resend.NewClient(cfg.APIKey),
		cfg:    cfg,
		logger: logger,
	}
}

func (m *Mailer) Send(ctx context.Context, msg models.MailMessage) error {
	params := &resend.SendEmailRequest{
		From:    m.cfg.From,
		To:      []string{m.cfg.OwnerEmail},
		Subject: msg.Subject,
		Html:    msg.HTML,
	}

	if msg.ReplyTo != "" {
		params.ReplyTo = msg.ReplyTo
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	m.logger.Debug("mail relayed", "id", sent.Id, "subject", msg.Subject)

	return nil
}
