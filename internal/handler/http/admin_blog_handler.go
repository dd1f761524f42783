package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/digipants/quicksquad-api/internal/handler/http/dto"
	usecasecontract "github.com/digipants/quicksquad-api/internal/usecase/contract"
)

// AdminBlogHandlerInterface defines the gated CRUD endpoints.
type AdminBlogHandlerInterface interface {
	ListBlogsHandler(*gin.Context)
	GetBlogByIDHandler(*gin.Context)
	CreateBlogHandler(*gin.Context)
	UpdateBlogHandler(*gin.Context)
	DeleteBlogHandler(*gin.Context)
}

// Ensure AdminBlogHandler implements AdminBlogHandlerInterface
var _ AdminBlogHandlerInterface = (*AdminBlogHandler)(nil)

// AdminBlogHandler serves blog CRUD behind the admin gate.
type AdminBlogHandler struct {
	blogUsecase usecasecontract.IBlogUseCase
}

func NewAdminBlogHandler(blogUsecase usecasecontract.IBlogUseCase) *AdminBlogHandler {
	return &AdminBlogHandler{
		blogUsecase: blogUsecase,
	}
}

// ListBlogsHandler returns all posts newest-first for the dashboard.
func (h *AdminBlogHandler) ListBlogsHandler(c *gin.Context) {
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

// GetBlogByIDHandler returns a single post by id for the edit form.
func (h *AdminBlogHandler) GetBlogByIDHandler(c *gin.Context) {
	id := c.Param("id")
	post, err := h.blogUsecase.GetBlogByID(c.Request.Context(), id)
	if err != nil {
		WriteBlogError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToBlogResponse(post))
}

// CreateBlogHandler creates a post. Duplicate slugs get 409.
func (h *AdminBlogHandler) CreateBlogHandler(c *gin.Context) {
	var req dto.CreateBlogRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	post, err := h.blogUsecase.CreateBlog(c.Request.Context(), req.Fields())
	if err != nil {
		WriteBlogError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.BlogWriteResponse{OK: true, Blog: dto.ToBlogResponse(post)})
}

// UpdateBlogHandler rewrites a post. The slug conflict check excludes the
// post being updated itself.
func (h *AdminBlogHandler) UpdateBlogHandler(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateBlogRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	post, err := h.blogUsecase.UpdateBlog(c.Request.Context(), id, req.Fields())
	if err != nil {
		WriteBlogError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.BlogWriteResponse{OK: true, Blog: dto.ToBlogResponse(post)})
}

// DeleteBlogHandler removes a post by id.
func (h *AdminBlogHandler) DeleteBlogHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.blogUsecase.DeleteBlog(c.Request.Context(), id); err != nil {
		WriteBlogError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.OKResponse{OK: true})
}
