package contract

import (
	"context"

	"github.com/digipants/quicksquad-api/internal/domain/entity"
)

// BlogFields carries the writable attributes of a post. Empty optional
// fields get defaults applied at create time.
type BlogFields struct {
	Title    string
	Slug     string
	Image    string
	Date     string
	Category string
	Content  string
}

// IBlogUseCase defines the blog business logic consumed by the HTTP layer.
type IBlogUseCase interface {
	ListBlogs(ctx context.Context) ([]entity.BlogPost, error)
	GetBlogBySlug(ctx context.Context, slug string) (*entity.BlogPost, error)
	GetBlogByID(ctx context.Context, id string) (*entity.BlogPost, error)
	SearchBlogs(ctx context.Context, query string) ([]entity.BlogRef, error)
	CreateBlog(ctx context.Context, fields BlogFields) (*entity.BlogPost, error)
	UpdateBlog(ctx context.Context, id string, fields BlogFields) (*entity.BlogPost, error)
	DeleteBlog(ctx context.Context, id string) error
}
