package usecase

import (
	"context"
	"fmt"

	"github.com/digipants/quicksquad-api/internal/domain/contract"
	"github.com/digipants/quicksquad-api/internal/domain/entity"
	usecasecontract "github.com/digipants/quicksquad-api/internal/usecase/contract"
)

// ContactUsecase sends the notification and confirmation mail for contact
// inquiries and mailing-list signups. No templating engine: plain bodies
// assembled inline.
type ContactUsecase struct {
	mailService  contract.IEmailService
	supportInbox string
	logger       usecasecontract.IAppLogger
}

// NewContactUsecase creates a new contact usecase.
func NewContactUsecase(mailService contract.IEmailService, supportInbox string, logger usecasecontract.IAppLogger) *ContactUsecase {
	return &ContactUsecase{
		mailService:  mailService,
		supportInbox: supportInbox,
		logger:       logger,
	}
}

var _ usecasecontract.IContactUseCase = (*ContactUsecase)(nil)

// SubmitInquiry mails the inquiry to the support inbox and a confirmation
// copy to the requester.
func (uc *ContactUsecase) SubmitInquiry(ctx context.Context, msg entity.ContactMessage) error {
	category := msg.Category
	if category == "" {
		category = "Not specified"
	}
	subCategory := msg.SubCategory
	if subCategory == "" {
		subCategory = "Not specified"
	}

	adminBody := fmt.Sprintf(
		"New support inquiry from the website.\r\n\r\n"+
			"Name: %s\r\nEmail: %s\r\nPhone: %s\r\nCategory: %s\r\nSub-Category: %s\r\n\r\n"+
			"Message:\r\n%s\r\n",
		msg.Name, msg.Email, msg.Phone, category, subCategory, msg.Message,
	)
	if err := uc.mailService.SendEmail(ctx, uc.supportInbox, fmt.Sprintf("New Support Inquiry from %s", msg.Name), adminBody); err != nil {
		return fmt.Errorf("failed to notify support inbox: %w", err)
	}

	userBody := fmt.Sprintf(
		"Hi %s,\r\n\r\n"+
			"We received your support request and one of our specialists will reach out shortly.\r\n\r\n"+
			"Category: %s\r\nSub-Category: %s\r\n\r\nYour message:\r\n%s\r\n\r\n"+
			"Our team operates 24x7, so expect a reply soon.\r\n\r\n- QuickSquad Support\r\n",
		msg.Name, category, subCategory, msg.Message,
	)
	if err := uc.mailService.SendEmail(ctx, msg.Email, "Your Support Request Has Been Received", userBody); err != nil {
		return fmt.Errorf("failed to send confirmation mail: %w", err)
	}
	uc.logger.Infof("contact inquiry forwarded for %s", msg.Email)
	return nil
}

// Subscribe mails a signup notice to the support inbox and a welcome mail to
// the subscriber.
func (uc *ContactUsecase) Subscribe(ctx context.Context, sub entity.Subscriber) error {
	adminBody := fmt.Sprintf(
		"A new user joined the mailing list.\r\n\r\nName: %s\r\nEmail: %s\r\n",
		sub.Name, sub.Email,
	)
	if err := uc.mailService.SendEmail(ctx, uc.supportInbox, "New Subscriber - QuickSquad", adminBody); err != nil {
		return fmt.Errorf("failed to notify support inbox: %w", err)
	}

	userBody := fmt.Sprintf(
		"Hi %s,\r\n\r\n"+
			"Thank you for subscribing to QuickSquad! You'll now receive tech tips,\r\n"+
			"troubleshooting guides and exclusive offers in your inbox.\r\n\r\n- Team QuickSquad\r\n",
		sub.Name,
	)
	if err := uc.mailService.SendEmail(ctx, sub.Email, "Welcome to QuickSquad", userBody); err != nil {
		return fmt.Errorf("failed to send welcome mail: %w", err)
	}
	uc.logger.Infof("new subscriber %s", sub.Email)
	return nil
}
