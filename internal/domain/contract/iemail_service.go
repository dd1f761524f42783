package contract

import "context"

// IEmailService sends transactional mail.
type IEmailService interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}
