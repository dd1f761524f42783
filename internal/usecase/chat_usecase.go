package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/digipants/quicksquad-api/internal/domain/contract"
	usecasecontract "github.com/digipants/quicksquad-api/internal/usecase/contract"
)

// ChatUsecase relays a visitor message to the chat-completion service.
type ChatUsecase struct {
	chatService contract.IChatService
	logger      usecasecontract.IAppLogger
}

// NewChatUsecase creates a new chat usecase.
func NewChatUsecase(chatService contract.IChatService, logger usecasecontract.IAppLogger) *ChatUsecase {
	return &ChatUsecase{chatService: chatService, logger: logger}
}

var _ usecasecontract.IChatUseCase = (*ChatUsecase)(nil)

// Reply forwards the message and returns the assistant reply.
func (uc *ChatUsecase) Reply(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", errors.New("message is required")
	}
	reply, err := uc.chatService.Complete(ctx, message)
	if err != nil {
		uc.logger.Errorf("chat completion failed: %v", err)
		return "", err
	}
	return reply, nil
}
