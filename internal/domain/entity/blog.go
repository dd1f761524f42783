package entity

import (
	"time"
)

// DefaultCategory is applied when a post is created without one.
const DefaultCategory = "General"

// BlogPost represents a single post in the site blog. Slug is unique across
// all posts and is the public URL identifier.
type BlogPost struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Title     string    `bson:"title" json:"title"`
	Slug      string    `bson:"slug" json:"slug"`
	Image     string    `bson:"image" json:"image"`
	Date      string    `bson:"date" json:"date"`
	Category  string    `bson:"category" json:"category"`
	Content   string    `bson:"content" json:"content"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// BlogRef is the projection returned by title search: just enough to link to
// the post.
type BlogRef struct {
	Title string `bson:"title" json:"title"`
	Slug  string `bson:"slug" json:"slug"`
}
