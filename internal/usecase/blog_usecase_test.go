package usecase_test

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digipants/quicksquad-api/internal/domain/contract"
	"github.com/digipants/quicksquad-api/internal/domain/entity"
	"github.com/digipants/quicksquad-api/internal/infrastructure/logger"
	"github.com/digipants/quicksquad-api/internal/usecase"
	usecasecontract "github.com/digipants/quicksquad-api/internal/usecase/contract"
)

// fakeBlogRepo is an in-memory IBlogRepository that mirrors the store's
// behavior, including the unique slug constraint.
type fakeBlogRepo struct {
	posts map[string]*entity.BlogPost
}

var _ contract.IBlogRepository = (*fakeBlogRepo)(nil)

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{posts: make(map[string]*entity.BlogPost)}
}

func (r *fakeBlogRepo) CreateBlog(ctx context.Context, post *entity.BlogPost) error {
	for _, p := range r.posts {
		if p.Slug == post.Slug {
			return fmt.Errorf("duplicate slug %q: %w", post.Slug, contract.ErrSlugTaken)
		}
	}
	cp := *post
	r.posts[post.ID] = &cp
	return nil
}

func (r *fakeBlogRepo) GetBlogByID(ctx context.Context, id string) (*entity.BlogPost, error) {
	post, ok := r.posts[id]
	if !ok {
		return nil, fmt.Errorf("blog %q: %w", id, contract.ErrNotFound)
	}
	cp := *post
	return &cp, nil
}

func (r *fakeBlogRepo) GetBlogBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	for _, p := range r.posts {
		if p.Slug == slug {
			cp := *p
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("blog %q: %w", slug, contract.ErrNotFound)
}

func (r *fakeBlogRepo) ListBlogs(ctx context.Context, limit int64) ([]entity.BlogPost, error) {
	out := make([]entity.BlogPost, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeBlogRepo) UpdateBlog(ctx context.Context, id string, updates map[string]interface{}) (*entity.BlogPost, error) {
	post, ok := r.posts[id]
	if !ok {
		return nil, fmt.Errorf("blog %q: %w", id, contract.ErrNotFound)
	}
	if v, ok := updates["title"].(string); ok {
		post.Title = v
	}
	if v, ok := updates["slug"].(string); ok {
		post.Slug = v
	}
	if v, ok := updates["image"].(string); ok {
		post.Image = v
	}
	if v, ok := updates["date"].(string); ok {
		post.Date = v
	}
	if v, ok := updates["category"].(string); ok {
		post.Category = v
	}
	if v, ok := updates["content"].(string); ok {
		post.Content = v
	}
	if v, ok := updates["updated_at"].(time.Time); ok {
		post.UpdatedAt = v
	}
	cp := *post
	return &cp, nil
}

func (r *fakeBlogRepo) DeleteBlog(ctx context.Context, id string) error {
	if _, ok := r.posts[id]; !ok {
		return fmt.Errorf("blog %q: %w", id, contract.ErrNotFound)
	}
	delete(r.posts, id)
	return nil
}

func (r *fakeBlogRepo) SearchBlogs(ctx context.Context, query string, limit int64) ([]entity.BlogRef, error) {
	refs := make([]entity.BlogRef, 0)
	for _, p := range r.posts {
		if strings.Contains(strings.ToLower(p.Title), strings.ToLower(query)) {
			refs = append(refs, entity.BlogRef{Title: p.Title, Slug: p.Slug})
		}
		if int64(len(refs)) >= limit {
			break
		}
	}
	return refs, nil
}

// sequentialIDs replaces random UUIDs with predictable ids in tests.
type sequentialIDs struct{ n int }

func (g *sequentialIDs) NewUUID() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

func newBlogUseCase() (*usecase.BlogUseCaseImpl, *fakeBlogRepo) {
	repo := newFakeBlogRepo()
	uc := usecase.NewBlogUseCase(repo, &sequentialIDs{}, logger.NewStdLogger())
	return uc, repo
}

func postFields(title, slug string) usecasecontract.BlogFields {
	return usecasecontract.BlogFields{
		Title:   title,
		Slug:    slug,
		Content: "<p>body</p>",
	}
}

func TestCreateBlog_AppliesDefaults(t *testing.T) {
	uc, _ := newBlogUseCase()

	post, err := uc.CreateBlog(context.Background(), postFields("Fix a Slow Laptop", "fix-a-slow-laptop"))
	require.NoError(t, err)

	assert.Equal(t, "id-1", post.ID)
	assert.Equal(t, entity.DefaultCategory, post.Category)
	assert.Empty(t, post.Image)
	assert.False(t, post.CreatedAt.IsZero())

	// date defaults to "now" in RFC3339
	parsed, err := time.Parse(time.RFC3339, post.Date)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), parsed, time.Minute)
}

func TestCreateBlog_KeepsProvidedFields(t *testing.T) {
	uc, _ := newBlogUseCase()

	fields := postFields("Router Resets", "router-resets")
	fields.Date = "2025-03-01T00:00:00Z"
	fields.Category = "Networking"
	fields.Image = "/images/router.png"

	post, err := uc.CreateBlog(context.Background(), fields)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-01T00:00:00Z", post.Date)
	assert.Equal(t, "Networking", post.Category)
	assert.Equal(t, "/images/router.png", post.Image)
}

func TestCreateBlog_MissingFields(t *testing.T) {
	uc, _ := newBlogUseCase()

	_, err := uc.CreateBlog(context.Background(), usecasecontract.BlogFields{Title: "only a title"})
	assert.ErrorIs(t, err, usecase.ErrValidation)
}

func TestCreateBlog_DuplicateSlug(t *testing.T) {
	uc, _ := newBlogUseCase()

	_, err := uc.CreateBlog(context.Background(), postFields("First", "shared-slug"))
	require.NoError(t, err)

	_, err = uc.CreateBlog(context.Background(), postFields("Second", "shared-slug"))
	assert.ErrorIs(t, err, usecase.ErrSlugTaken)
}

func TestUpdateBlog_OwnSlugIsNotAConflict(t *testing.T) {
	uc, _ := newBlogUseCase()

	post, err := uc.CreateBlog(context.Background(), postFields("First", "keep-this-slug"))
	require.NoError(t, err)

	fields := postFields("First, revised", "keep-this-slug")
	updated, err := uc.UpdateBlog(context.Background(), post.ID, fields)
	require.NoError(t, err)
	assert.Equal(t, "First, revised", updated.Title)
	assert.Equal(t, "keep-this-slug", updated.Slug)
}

func TestUpdateBlog_ForeignSlugConflicts(t *testing.T) {
	uc, _ := newBlogUseCase()

	_, err := uc.CreateBlog(context.Background(), postFields("First", "taken"))
	require.NoError(t, err)
	second, err := uc.CreateBlog(context.Background(), postFields("Second", "free"))
	require.NoError(t, err)

	_, err = uc.UpdateBlog(context.Background(), second.ID, postFields("Second", "taken"))
	assert.ErrorIs(t, err, usecase.ErrSlugTaken)
}

func TestUpdateBlog_NotFound(t *testing.T) {
	uc, _ := newBlogUseCase()

	_, err := uc.UpdateBlog(context.Background(), "missing-id", postFields("T", "s"))
	assert.ErrorIs(t, err, usecase.ErrNotFound)
}

func TestUpdateBlog_MissingFields(t *testing.T) {
	uc, _ := newBlogUseCase()

	_, err := uc.UpdateBlog(context.Background(), "any", usecasecontract.BlogFields{Slug: "s"})
	assert.ErrorIs(t, err, usecase.ErrValidation)
}

func TestDeleteBlog(t *testing.T) {
	uc, repo := newBlogUseCase()

	post, err := uc.CreateBlog(context.Background(), postFields("Doomed", "doomed"))
	require.NoError(t, err)

	require.NoError(t, uc.DeleteBlog(context.Background(), post.ID))
	assert.Empty(t, repo.posts)
}

func TestDeleteBlog_NotFound(t *testing.T) {
	uc, _ := newBlogUseCase()

	err := uc.DeleteBlog(context.Background(), "missing-id")
	assert.ErrorIs(t, err, usecase.ErrNotFound)
}

func TestListBlogs_NewestFirst(t *testing.T) {
	uc, repo := newBlogUseCase()

	old := &entity.BlogPost{ID: "a", Title: "Old", Slug: "old", CreatedAt: time.Now().Add(-time.Hour)}
	recent := &entity.BlogPost{ID: "b", Title: "Recent", Slug: "recent", CreatedAt: time.Now()}
	repo.posts["a"] = old
	repo.posts["b"] = recent

	posts, err := uc.ListBlogs(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "Recent", posts[0].Title)
	assert.Equal(t, "Old", posts[1].Title)
}

func TestSearchBlogs_CaseInsensitive(t *testing.T) {
	uc, _ := newBlogUseCase()

	_, err := uc.CreateBlog(context.Background(), postFields("Fix a Slow LAPTOP", "fix-a-slow-laptop"))
	require.NoError(t, err)

	refs, err := uc.SearchBlogs(context.Background(), "laptop")
	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, "fix-a-slow-laptop", refs[0].Slug)
}
