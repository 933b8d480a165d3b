package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/msomdec/devconnect/internal/domain"
	"github.com/msomdec/devconnect/internal/service"
)

func TestPostService_Create_SnapshotsAuthor(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewPostService(db.Posts(), db.Users())
	ctx := context.Background()

	user := createUser(t, db, "author@example.com")

	post, err := svc.Create(ctx, user.ID, "hello world")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if post.ID == 0 {
		t.Fatal("expected post ID to be set")
	}
	if post.Name != user.Name {
		t.Errorf("expected author name snapshot %q, got %q", user.Name, post.Name)
	}
	if post.Text != "hello world" {
		t.Errorf("unexpected text %q", post.Text)
	}
}

func TestPostService_Create_EmptyText(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewPostService(db.Posts(), db.Users())

	user := createUser(t, db, "author@example.com")

	_, err := svc.Create(context.Background(), user.ID, "   ")
	var validationErr *domain.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(validationErr.Messages) != 1 || validationErr.Messages[0] != "text is required" {
		t.Fatalf("unexpected messages %v", validationErr.Messages)
	}
}

func TestPostService_Create_UnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewPostService(db.Posts(), db.Users())

	_, err := svc.Create(context.Background(), 9999, "hello")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostService_List_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewPostService(db.Posts(), db.Users())
	ctx := context.Background()

	user := createUser(t, db, "author@example.com")

	for _, text := range []string{"first", "second"} {
		if _, err := svc.Create(ctx, user.ID, text); err != nil {
			t.Fatalf("Create %q: %v", text, err)
		}
	}

	posts, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].Text != "second" || posts[1].Text != "first" {
		t.Errorf("expected newest-first ordering, got %q then %q", posts[0].Text, posts[1].Text)
	}
}
