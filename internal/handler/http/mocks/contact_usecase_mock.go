package mocks

import (
	"context"
	"errors"

	"github.com/digipants/quicksquad-api/internal/domain/entity"
	usecasecontract "github.com/digipants/quicksquad-api/internal/usecase/contract"
)

// MockContactUsecase is a mock implementation of the IContactUseCase interface.
type MockContactUsecase struct {
	ShouldFailInquiry   bool
	ShouldFailSubscribe bool

	// Captured inputs
	LastInquiry    entity.ContactMessage
	LastSubscriber entity.Subscriber
}

var _ usecasecontract.IContactUseCase = (*MockContactUsecase)(nil)

func NewMockContactUsecase() *MockContactUsecase {
	return &MockContactUsecase{}
}

func (m *MockContactUsecase) SubmitInquiry(ctx context.Context, msg entity.ContactMessage) error {
	if m.ShouldFailInquiry {
		return errors.New("smtp send failed")
	}
	m.LastInquiry = msg
	return nil
}

func (m *MockContactUsecase) Subscribe(ctx context.Context, sub entity.Subscriber) error {
	if m.ShouldFailSubscribe {
		return errors.New("smtp send failed")
	}
	m.LastSubscriber = sub
	return nil
}

// MockChatUsecase is a mock implementation of the IChatUseCase interface.
type MockChatUsecase struct {
	ShouldFail bool
	MockReply  string
}

var _ usecasecontract.IChatUseCase = (*MockChatUsecase)(nil)

func NewMockChatUsecase() *MockChatUsecase {
	return &MockChatUsecase{MockReply: "Try restarting the router first."}
}

func (m *MockChatUsecase) Reply(ctx context.Context, message string) (string, error) {
	if m.ShouldFail {
		return "", errors.New("upstream chat service failed")
	}
	return m.MockReply, nil
}
