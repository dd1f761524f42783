package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/digipants/quicksquad-api/internal/domain/entity"
	"github.com/digipants/quicksquad-api/internal/handler/http/dto"
	usecasecontract "github.com/digipants/quicksquad-api/internal/usecase/contract"
)

// ContactHandler serves the contact form and mailing-list signup endpoints.
type ContactHandler struct {
	contactUsecase usecasecontract.IContactUseCase
}

func NewContactHandler(contactUsecase usecasecontract.IContactUseCase) *ContactHandler {
	return &ContactHandler{contactUsecase: contactUsecase}
}

// SendContactHandler forwards a support inquiry by mail.
func (h *ContactHandler) SendContactHandler(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.SendResponse{Success: false, Error: "Missing required fields."})
		return
	}

	msg := entity.ContactMessage{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Message:     req.Message,
		Category:    req.Category,
		SubCategory: req.SubCategory,
	}
	if err := h.contactUsecase.SubmitInquiry(c.Request.Context(), msg); err != nil {
		c.JSON(http.StatusInternalServerError, dto.SendResponse{Success: false, Error: "Failed to send email."})
		return
	}
	c.JSON(http.StatusOK, dto.SendResponse{Success: true})
}

// SubscribeHandler adds a mailing-list subscriber.
func (h *ContactHandler) SubscribeHandler(c *gin.Context) {
	var req dto.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.SendResponse{Success: false})
		return
	}

	sub := entity.Subscriber{Name: req.Name, Email: req.Email}
	if err := h.contactUsecase.Subscribe(c.Request.Context(), sub); err != nil {
		c.JSON(http.StatusInternalServerError, dto.SendResponse{Success: false})
		return
	}
	c.JSON(http.StatusOK, dto.SendResponse{Success: true})
}
