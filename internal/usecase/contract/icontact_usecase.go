package contract

import (
	"context"

	"github.com/digipants/quicksquad-api/internal/domain/entity"
)

// IContactUseCase handles contact-form inquiries and mailing-list signups.
type IContactUseCase interface {
	SubmitInquiry(ctx context.Context, msg entity.ContactMessage) error
	Subscribe(ctx context.Context, sub entity.Subscriber) error
}

// IChatUseCase relays visitor chat messages to the support assistant.
type IChatUseCase interface {
	Reply(ctx context.Context, message string) (string, error)
}
