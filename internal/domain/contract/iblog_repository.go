package contract

import (
	"context"

	"github.com/digipants/quicksquad-api/internal/domain/entity"
)

// IBlogRepository provides methods for managing blog posts in the database.
// Slug uniqueness is enforced by the backing store (unique index), so
// concurrent creates with the same slug cannot both succeed.
type IBlogRepository interface {
	CreateBlog(ctx context.Context, post *entity.BlogPost) error
	GetBlogByID(ctx context.Context, id string) (*entity.BlogPost, error)
	GetBlogBySlug(ctx context.Context, slug string) (*entity.BlogPost, error)
	// ListBlogs returns posts newest-first, capped at limit.
	ListBlogs(ctx context.Context, limit int64) ([]entity.BlogPost, error)
	UpdateBlog(ctx context.Context, id string, updates map[string]interface{}) (*entity.BlogPost, error)
	DeleteBlog(ctx context.Context, id string) error
	// SearchBlogs matches the query case-insensitively against post titles
	// and returns at most limit {title, slug} pairs.
	SearchBlogs(ctx context.Context, query string, limit int64) ([]entity.BlogRef, error)
}
