package middlewares

import (
	"context"

	"storefront-bff/internal/models"
)

//go:generate mockgen -source=mail_provider.go -destination=../mocks/mock_mail_provider.go -package=mocks

// MailProvider delivers transactional mail to the shop owner.
type MailProvider interface {
	Send(ctx context.Context, msg models.MailMessage) error
}
