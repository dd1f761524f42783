package contract

import "errors"

// Repository-level sentinel errors. Implementations wrap these with %w so
// callers can match with errors.Is regardless of backend.
var (
	ErrNotFound  = errors.New("blog not found")
	ErrSlugTaken = errors.New("slug already exists")
)
