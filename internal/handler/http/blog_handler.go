package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/digipants/quicksquad-api/internal/handler/http/dto"
	usecasecontract "github.com/digipants/quicksquad-api/internal/usecase/contract"
)

// BlogHandlerInterface defines the public blog endpoints for interface-based
// dependency injection (testing/mocking).
type BlogHandlerInterface interface {
	ListBlogsHandler(*gin.Context)
	GetBlogBySlugHandler(*gin.Context)
	SearchBlogsHandler(*gin.Context)
}

// Ensure BlogHandler implements BlogHandlerInterface
var _ BlogHandlerInterface = (*BlogHandler)(nil)

// BlogHandler serves the public, unauthenticated blog reads.
type BlogHandler struct {
	blogUsecase usecasecontract.IBlogUseCase
}

func NewBlogHandler(blogUsecase usecasecontract.IBlogUseCase) *BlogHandler {
	return &BlogHandler{
		blogUsecase: blogUsecase,
	}
}

// ListBlogsHandler returns all posts, newest-first.
func (h *BlogHandler) ListBlogsHandler(c *gin.Context) {
	posts, err := h.blogUsecase.ListBlogs(c.Request.Context())
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Server error")
		return
	}
	responses := make([]dto.BlogResponse, 0, len(posts))
	for i := range posts {
		responses = append(responses, dto.ToBlogResponse(&posts[i]))
	}
	SuccessHandler(c, http.StatusOK, responses)
}

// GetBlogBySlugHandler returns a single post by its public slug.
func (h *BlogHandler) GetBlogBySlugHandler(c *gin.Context) {
	slug := c.Param("slug")
	post, err := h.blogUsecase.GetBlogBySlug(c.Request.Context(), slug)
	if err != nil {
		WriteBlogError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToBlogResponse(post))
}

// SearchBlogsHandler matches ?q= against titles, case-insensitively.
func (h *BlogHandler) SearchBlogsHandler(c *gin.Context) {
	query := c.Query("q")
	refs, err := h.blogUsecase.SearchBlogs(c.Request.Context(), query)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Server error")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.SearchBlogsResponse{Blogs: refs})
}
