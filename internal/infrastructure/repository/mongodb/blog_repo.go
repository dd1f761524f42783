package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/digipants/quicksquad-api/internal/domain/contract"
	"github.com/digipants/quicksquad-api/internal/domain/entity"
)

// BlogRepository is the MongoDB implementation of contract.IBlogRepository.
type BlogRepository struct {
	collection *mongo.Collection
}

// NewBlogRepository creates and returns a new BlogRepository instance.
func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{
		collection: db.Collection("blogs"),
	}
}

var _ contract.IBlogRepository = (*BlogRepository)(nil)

// EnsureIndexes creates the unique index on slug. Must run at startup: the
// index is what makes the create/update conflict check race-free.
func (r *BlogRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create slug index: %w", err)
	}
	return nil
}

// CreateBlog inserts a new blog post record into the database.
func (r *BlogRepository) CreateBlog(ctx context.Context, post *entity.BlogPost) error {
	_, err := r.collection.InsertOne(ctx, post)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("slug %q: %w", post.Slug, contract.ErrSlugTaken)
		}
		return fmt.Errorf("failed to create blog post: %w", err)
	}
	return nil
}

// GetBlogByID retrieves a single blog post by its unique id.
func (r *BlogRepository) GetBlogByID(ctx context.Context, id string) (*entity.BlogPost, error) {
	var post entity.BlogPost
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("blog with id %q: %w", id, contract.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to retrieve blog post: %w", err)
	}
	return &post, nil
}

// GetBlogBySlug retrieves a single blog post by its unique slug.
func (r *BlogRepository) GetBlogBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	var post entity.BlogPost
	err := r.collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("blog with slug %q: %w", slug, contract.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to retrieve blog post: %w", err)
	}
	return &post, nil
}

// ListBlogs retrieves posts newest-first, capped at limit.
func (r *BlogRepository) ListBlogs(ctx context.Context, limit int64) ([]entity.BlogPost, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}
	defer cursor.Close(ctx)

	posts := []entity.BlogPost{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode blog posts: %w", err)
	}
	return posts, nil
}

// UpdateBlog applies the given field updates and returns the updated post.
func (r *BlogRepository) UpdateBlog(ctx context.Context, id string, updates map[string]interface{}) (*entity.BlogPost, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var post entity.BlogPost
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": updates}, opts).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("blog with id %q: %w", id, contract.ErrNotFound)
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("slug conflict on update: %w", contract.ErrSlugTaken)
		}
		return nil, fmt.Errorf("failed to update blog post: %w", err)
	}
	return &post, nil
}

// DeleteBlog removes the post by id.
func (r *BlogRepository) DeleteBlog(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete blog post: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("blog with id %q: %w", id, contract.ErrNotFound)
	}
	return nil
}

// SearchBlogs matches the query case-insensitively against titles and
// projects {title, slug} pairs, capped at limit.
func (r *BlogRepository) SearchBlogs(ctx context.Context, query string, limit int64) ([]entity.BlogRef, error) {
	filter := bson.M{"title": bson.M{
		"$regex": primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"},
	}}
	opts := options.Find().
		SetProjection(bson.M{"title": 1, "slug": 1}).
		SetLimit(limit)
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search blog posts: %w", err)
	}
	defer cursor.Close(ctx)

	refs := []entity.BlogRef{}
	if err := cursor.All(ctx, &refs); err != nil {
		return nil, fmt.Errorf("failed to decode search results: %w", err)
	}
	return refs, nil
}
