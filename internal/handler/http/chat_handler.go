package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/digipants/quicksquad-api/internal/handler/http/dto"
	usecasecontract "github.com/digipants/quicksquad-api/internal/usecase/contract"
)

// ChatHandler proxies widget messages to the chat usecase.
type ChatHandler struct {
	chatUsecase usecasecontract.IChatUseCase
}

func NewChatHandler(chatUsecase usecasecontract.IChatUseCase) *ChatHandler {
	return &ChatHandler{chatUsecase: chatUsecase}
}

// ChatHandler handles POST /api/chat.
func (h *ChatHandler) ChatHandler(c *gin.Context) {
	var req dto.ChatRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	reply, err := h.chatUsecase.Reply(c.Request.Context(), req.Message)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Something went wrong")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ChatResponse{Reply: reply})
}
