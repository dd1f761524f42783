package contract

import (
	"context"

	"github.com/digipants/quicksquad-api/internal/domain/entity"
)

// IBlogCache is a read-through cache for public blog reads. Implementations
// must tolerate a missing backend: a miss is (nil/empty, false, nil).
type IBlogCache interface {
	GetBlogBySlug(ctx context.Context, slug string) (*entity.BlogPost, bool, error)
	SetBlogBySlug(ctx context.Context, slug string, post *entity.BlogPost) error
	GetBlogList(ctx context.Context) ([]entity.BlogPost, bool, error)
	SetBlogList(ctx context.Context, posts []entity.BlogPost) error
	// Invalidate drops the cached list and the given slugs after a write.
	Invalidate(ctx context.Context, slugs ...string) error
}
