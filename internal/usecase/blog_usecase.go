package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/digipants/quicksquad-api/internal/domain/contract"
	"github.com/digipants/quicksquad-api/internal/domain/entity"
	"github.com/digipants/quicksquad-api/internal/infrastructure/metrics"
	usecasecontract "github.com/digipants/quicksquad-api/internal/usecase/contract"
)

const (
	// listLimit caps the admin/public list: "all posts" with a sanity bound.
	listLimit = 1000
	// searchLimit bounds title search results.
	searchLimit = 10
)

// BlogUseCaseImpl implements the blog business logic over the repository,
// with an optional read-through cache for the public endpoints.
type BlogUseCaseImpl struct {
	blogRepo  contract.IBlogRepository
	uuidgen   contract.IUUIDGenerator
	logger    usecasecontract.IAppLogger
	blogCache contract.IBlogCache
}

// NewBlogUseCase creates a new instance of the blog usecase.
func NewBlogUseCase(blogRepo contract.IBlogRepository, uuidgen contract.IUUIDGenerator, logger usecasecontract.IAppLogger) *BlogUseCaseImpl {
	return &BlogUseCaseImpl{
		blogRepo: blogRepo,
		uuidgen:  uuidgen,
		logger:   logger,
	}
}

// check that BlogUseCaseImpl implements the IBlogUseCase contract
var _ usecasecontract.IBlogUseCase = (*BlogUseCaseImpl)(nil)

// SetBlogCache injects the optional cache after construction.
func (uc *BlogUseCaseImpl) SetBlogCache(cache contract.IBlogCache) {
	uc.blogCache = cache
}

// ListBlogs returns all posts newest-first, capped at a large limit.
func (uc *BlogUseCaseImpl) ListBlogs(ctx context.Context) ([]entity.BlogPost, error) {
	if uc.blogCache != nil {
		if posts, ok, err := uc.blogCache.GetBlogList(ctx); err == nil && ok {
			metrics.BlogCacheHits.WithLabelValues("list").Inc()
			return posts, nil
		}
		metrics.BlogCacheMisses.WithLabelValues("list").Inc()
	}

	posts, err := uc.blogRepo.ListBlogs(ctx, listLimit)
	if err != nil {
		return nil, err
	}
	if uc.blogCache != nil {
		if err := uc.blogCache.SetBlogList(ctx, posts); err != nil {
			uc.logger.Warnf("failed to cache blog list: %v", err)
		}
	}
	return posts, nil
}

// GetBlogBySlug returns a single post by its public slug.
func (uc *BlogUseCaseImpl) GetBlogBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	if uc.blogCache != nil {
		if post, ok, err := uc.blogCache.GetBlogBySlug(ctx, slug); err == nil && ok {
			metrics.BlogCacheHits.WithLabelValues("detail").Inc()
			return post, nil
		}
		metrics.BlogCacheMisses.WithLabelValues("detail").Inc()
	}

	post, err := uc.blogRepo.GetBlogBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if uc.blogCache != nil {
		if err := uc.blogCache.SetBlogBySlug(ctx, slug, post); err != nil {
			uc.logger.Warnf("failed to cache blog %q: %v", slug, err)
		}
	}
	return post, nil
}

// GetBlogByID returns a single post by its opaque id.
func (uc *BlogUseCaseImpl) GetBlogByID(ctx context.Context, id string) (*entity.BlogPost, error) {
	return uc.blogRepo.GetBlogByID(ctx, id)
}

// SearchBlogs matches the query against post titles, case-insensitively.
func (uc *BlogUseCaseImpl) SearchBlogs(ctx context.Context, query string) ([]entity.BlogRef, error) {
	return uc.blogRepo.SearchBlogs(ctx, query, searchLimit)
}

// CreateBlog validates the fields, applies defaults and persists the post.
// A slug owned by another post yields ErrSlugTaken.
func (uc *BlogUseCaseImpl) CreateBlog(ctx context.Context, fields usecasecontract.BlogFields) (*entity.BlogPost, error) {
	if fields.Title == "" || fields.Slug == "" || fields.Content == "" {
		return nil, ErrValidation
	}

	// Fast pre-check for a friendly conflict error. The unique index on slug
	// is the real guarantee; a concurrent create surfaces as ErrSlugTaken
	// from CreateBlog below.
	if existing, err := uc.blogRepo.GetBlogBySlug(ctx, fields.Slug); err == nil && existing != nil {
		return nil, ErrSlugTaken
	}

	now := time.Now()
	post := &entity.BlogPost{
		ID:        uc.uuidgen.NewUUID(),
		Title:     fields.Title,
		Slug:      fields.Slug,
		Image:     fields.Image,
		Date:      fields.Date,
		Category:  fields.Category,
		Content:   fields.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if post.Date == "" {
		post.Date = now.Format(time.RFC3339)
	}
	if post.Category == "" {
		post.Category = entity.DefaultCategory
	}

	if err := uc.blogRepo.CreateBlog(ctx, post); err != nil {
		if errors.Is(err, ErrSlugTaken) {
			return nil, ErrSlugTaken
		}
		uc.logger.Errorf("failed to create blog %q: %v", fields.Slug, err)
		return nil, err
	}
	uc.invalidateCache(ctx, post.Slug)
	metrics.BlogWritesTotal.WithLabelValues("create").Inc()
	return post, nil
}

// UpdateBlog validates the fields and rewrites the post. The slug conflict
// check excludes the post being updated itself.
func (uc *BlogUseCaseImpl) UpdateBlog(ctx context.Context, id string, fields usecasecontract.BlogFields) (*entity.BlogPost, error) {
	if fields.Title == "" || fields.Slug == "" || fields.Content == "" {
		return nil, ErrValidation
	}

	current, err := uc.blogRepo.GetBlogByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if conflict, err := uc.blogRepo.GetBlogBySlug(ctx, fields.Slug); err == nil && conflict != nil && conflict.ID != id {
		return nil, ErrSlugTaken
	}

	updates := map[string]interface{}{
		"title":      fields.Title,
		"slug":       fields.Slug,
		"image":      fields.Image,
		"date":       fields.Date,
		"category":   fields.Category,
		"content":    fields.Content,
		"updated_at": time.Now(),
	}
	if fields.Date == "" {
		updates["date"] = time.Now().Format(time.RFC3339)
	}
	if fields.Category == "" {
		updates["category"] = entity.DefaultCategory
	}

	updated, err := uc.blogRepo.UpdateBlog(ctx, id, updates)
	if err != nil {
		if errors.Is(err, ErrSlugTaken) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	uc.invalidateCache(ctx, current.Slug, updated.Slug)
	metrics.BlogWritesTotal.WithLabelValues("update").Inc()
	return updated, nil
}

// DeleteBlog removes the post by id.
func (uc *BlogUseCaseImpl) DeleteBlog(ctx context.Context, id string) error {
	current, err := uc.blogRepo.GetBlogByID(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.blogRepo.DeleteBlog(ctx, id); err != nil {
		return err
	}
	uc.invalidateCache(ctx, current.Slug)
	metrics.BlogWritesTotal.WithLabelValues("delete").Inc()
	return nil
}

func (uc *BlogUseCaseImpl) invalidateCache(ctx context.Context, slugs ...string) {
	if uc.blogCache == nil {
		return
	}
	if err := uc.blogCache.Invalidate(ctx, slugs...); err != nil {
		uc.logger.Warnf("failed to invalidate blog cache: %v", err)
	}
}
