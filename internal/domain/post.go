package domain

import (
	"context"
	"time"
)

// Post is a short text post. Name and Avatar are snapshots of the author
// taken at creation time, not live joins.
type Post struct {
	ID        int64
	UserID    int64
	Name      string
	Avatar    string
	Text      string
	CreatedAt time.Time
}

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *Post) error
	GetByID(ctx context.Context, id int64) (*Post, error)
	// List returns all posts newest-first.
	List(ctx context.Context) ([]Post, error)
}
