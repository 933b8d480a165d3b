package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/msomdec/devconnect/internal/domain"
)

// PostService handles post creation and reads.
type PostService struct {
	posts domain.PostRepository
	users domain.UserRepository
}

// NewPostService creates a new PostService.
func NewPostService(posts domain.PostRepository, users domain.UserRepository) *PostService {
	return &PostService{posts: posts, users: users}
}

// Create validates the text and persists a post with the author's name and
// avatar snapshotted at write time.
func (s *PostService) Create(ctx context.Context, userID int64, text string) (*domain.Post, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.NewValidationError("text is required")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	post := &domain.Post{
		UserID: userID,
		Name:   user.Name,
		Avatar: user.Avatar,
		Text:   text,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

// List returns all posts newest-first.
func (s *PostService) List(ctx context.Context) ([]domain.Post, error) {
	return s.posts.List(ctx)
}

// GetByID returns a single post or ErrNotFound.
func (s *PostService) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	return s.posts.GetByID(ctx, id)
}
