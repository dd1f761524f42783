package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/digipants/quicksquad-api/internal/handler/http/dto"
	"github.com/digipants/quicksquad-api/internal/usecase"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// WriteBlogError maps a blog usecase error onto an HTTP status: validation
// 400, conflict 409, missing 404, everything else a generic 500.
func WriteBlogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		ErrorHandler(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, usecase.ErrSlugTaken):
		ErrorHandler(c, http.StatusConflict, "Slug already exists")
	case errors.Is(err, usecase.ErrNotFound):
		ErrorHandler(c, http.StatusNotFound, "Blog not found")
	default:
		ErrorHandler(c, http.StatusInternalServerError, "Server error")
	}
}
