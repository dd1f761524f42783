package usecase

import (
	"errors"

	"github.com/digipants/quicksquad-api/internal/domain/contract"
)

// Sentinel errors mapped to HTTP statuses at the handler boundary.
var (
	// ErrNotFound means the requested post does not exist.
	ErrNotFound = contract.ErrNotFound
	// ErrSlugTaken means the slug is already owned by a different post.
	ErrSlugTaken = contract.ErrSlugTaken
	// ErrValidation means a required field is missing.
	ErrValidation = errors.New("missing required fields: title, slug, content")
)
