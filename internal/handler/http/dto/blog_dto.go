package dto

import (
	"time"

	"github.com/digipants/quicksquad-api/internal/domain/entity"
	usecasecontract "github.com/digipants/quicksquad-api/internal/usecase/contract"
)

// CreateBlogRequest defines the structure for creating a new blog post.
type CreateBlogRequest struct {
	Title    string `json:"title" binding:"required"`
	Slug     string `json:"slug" binding:"required"`
	Image    string `json:"image"`
	Date     string `json:"date"`
	Category string `json:"category"`
	Content  string `json:"content" binding:"required"`
}

// UpdateBlogRequest defines the structure for rewriting an existing post.
// Same required fields as create: updates replace the whole document.
type UpdateBlogRequest struct {
	Title    string `json:"title" binding:"required"`
	Slug     string `json:"slug" binding:"required"`
	Image    string `json:"image"`
	Date     string `json:"date"`
	Category string `json:"category"`
	Content  string `json:"content" binding:"required"`
}

// BlogResponse defines the standard JSON response for a single post.
type BlogResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Image     string    `json:"image"`
	Date      string    `json:"date"`
	Category  string    `json:"category"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BlogWriteResponse wraps a post returned from a create/update.
type BlogWriteResponse struct {
	OK   bool         `json:"ok"`
	Blog BlogResponse `json:"blog"`
}

// SearchBlogsResponse is the bounded list of {title, slug} matches.
type SearchBlogsResponse struct {
	Blogs []entity.BlogRef `json:"blogs"`
}

// ToBlogResponse converts an entity.BlogPost to a BlogResponse DTO.
func ToBlogResponse(post *entity.BlogPost) BlogResponse {
	return BlogResponse{
		ID:        post.ID,
		Title:     post.Title,
		Slug:      post.Slug,
		Image:     post.Image,
		Date:      post.Date,
		Category:  post.Category,
		Content:   post.Content,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

// Fields maps a create request onto usecase blog fields.
func (r CreateBlogRequest) Fields() usecasecontract.BlogFields {
	return usecasecontract.BlogFields{
		Title:    r.Title,
		Slug:     r.Slug,
		Image:    r.Image,
		Date:     r.Date,
		Category: r.Category,
		Content:  r.Content,
	}
}

// Fields maps an update request onto usecase blog fields.
func (r UpdateBlogRequest) Fields() usecasecontract.BlogFields {
	return usecasecontract.BlogFields{
		Title:    r.Title,
		Slug:     r.Slug,
		Image:    r.Image,
		Date:     r.Date,
		Category: r.Category,
		Content:  r.Content,
	}
}
