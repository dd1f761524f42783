package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/digipants/quicksquad-api/internal/domain/contract"
	"github.com/digipants/quicksquad-api/internal/domain/entity"
)

const blogListKey = "blogs:list"

// BlogCacheStore caches public blog reads in Redis.
type BlogCacheStore struct {
	rdb       *redis.Client
	detailTTL time.Duration
	listTTL   time.Duration
}

// NewBlogCacheStore creates a cache store over the given client.
func NewBlogCacheStore(rdb *redis.Client) *BlogCacheStore {
	return &BlogCacheStore{
		rdb:       rdb,
		detailTTL: 60 * time.Minute,
		listTTL:   30 * time.Minute,
	}
}

var _ contract.IBlogCache = (*BlogCacheStore)(nil)

func blogDetailKey(slug string) string { return fmt.Sprintf("blog:slug:%s", slug) }

// GetBlogBySlug returns the cached post, if any.
func (c *BlogCacheStore) GetBlogBySlug(ctx context.Context, slug string) (*entity.BlogPost, bool, error) {
	b, err := c.rdb.Get(ctx, blogDetailKey(slug)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var post entity.BlogPost
	if err := json.Unmarshal(b, &post); err != nil {
		return nil, false, nil
	}
	return &post, true, nil
}

// SetBlogBySlug caches a post under its slug.
func (c *BlogCacheStore) SetBlogBySlug(ctx context.Context, slug string, post *entity.BlogPost) error {
	data, err := json.Marshal(post)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, blogDetailKey(slug), data, c.detailTTL).Err()
}

// GetBlogList returns the cached public list, if any.
func (c *BlogCacheStore) GetBlogList(ctx context.Context) ([]entity.BlogPost, bool, error) {
	b, err := c.rdb.Get(ctx, blogListKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var posts []entity.BlogPost
	if err := json.Unmarshal(b, &posts); err != nil {
		return nil, false, nil
	}
	return posts, true, nil
}

// SetBlogList caches the public list.
func (c *BlogCacheStore) SetBlogList(ctx context.Context, posts []entity.BlogPost) error {
	data, err := json.Marshal(posts)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, blogListKey, data, c.listTTL).Err()
}

// Invalidate drops the cached list and the given slugs after a write.
func (c *BlogCacheStore) Invalidate(ctx context.Context, slugs ...string) error {
	keys := []string{blogListKey}
	for _, slug := range slugs {
		if slug != "" {
			keys = append(keys, blogDetailKey(slug))
		}
	}
	return c.rdb.Del(ctx, keys...).Err()
}
