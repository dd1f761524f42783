package mocks

import (
	"context"
	"errors"
	"time"

	"github.com/digipants/quicksquad-api/internal/domain/entity"
	"github.com/digipants/quicksquad-api/internal/usecase"
	usecasecontract "github.com/digipants/quicksquad-api/internal/usecase/contract"
)

// MockBlogUsecase is a mock implementation of the IBlogUseCase interface.
type MockBlogUsecase struct {
	// Control mock behavior
	ShouldFailList   bool
	ShouldFailGet    bool
	ShouldFailSearch bool
	ShouldFailCreate bool
	ShouldFailUpdate bool
	ShouldFailDelete bool
	// Return conflict instead of a generic failure on writes
	SlugConflict bool

	// Return values
	MockPost entity.BlogPost
}

// Ensure MockBlogUsecase implements the handler-facing contract
var _ usecasecontract.IBlogUseCase = (*MockBlogUsecase)(nil)

func NewMockBlogUsecase() *MockBlogUsecase {
	return &MockBlogUsecase{
		MockPost: entity.BlogPost{
			ID:        "mock-blog-id",
			Title:     "Fix a Slow Laptop",
			Slug:      "fix-a-slow-laptop",
			Category:  entity.DefaultCategory,
			Date:      "2025-06-01T00:00:00Z",
			Content:   "<p>Start with the startup programs.</p>",
			CreatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

func (m *MockBlogUsecase) ListBlogs(ctx context.Context) ([]entity.BlogPost, error) {
	if m.ShouldFailList {
		return nil, errors.New("list failed")
	}
	return []entity.BlogPost{m.MockPost}, nil
}

func (m *MockBlogUsecase) GetBlogBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	if m.ShouldFailGet {
		return nil, usecase.ErrNotFound
	}
	return &m.MockPost, nil
}

func (m *MockBlogUsecase) GetBlogByID(ctx context.Context, id string) (*entity.BlogPost, error) {
	if m.ShouldFailGet {
		return nil, usecase.ErrNotFound
	}
	return &m.MockPost, nil
}

func (m *MockBlogUsecase) SearchBlogs(ctx context.Context, query string) ([]entity.BlogRef, error) {
	if m.ShouldFailSearch {
		return nil, errors.New("search failed")
	}
	return []entity.BlogRef{{Title: m.MockPost.Title, Slug: m.MockPost.Slug}}, nil
}

func (m *MockBlogUsecase) CreateBlog(ctx context.Context, fields usecasecontract.BlogFields) (*entity.BlogPost, error) {
	if m.SlugConflict {
		return nil, usecase.ErrSlugTaken
	}
	if m.ShouldFailCreate {
		return nil, errors.New("create failed")
	}
	return &m.MockPost, nil
}

func (m *MockBlogUsecase) UpdateBlog(ctx context.Context, id string, fields usecasecontract.BlogFields) (*entity.BlogPost, error) {
	if m.SlugConflict {
		return nil, usecase.ErrSlugTaken
	}
	if m.ShouldFailUpdate {
		return nil, usecase.ErrNotFound
	}
	return &m.MockPost, nil
}

func (m *MockBlogUsecase) DeleteBlog(ctx context.Context, id string) error {
	if m.ShouldFailDelete {
		return usecase.ErrNotFound
	}
	return nil
}
