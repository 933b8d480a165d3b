package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/msomdec/devconnect/internal/domain"
	"github.com/msomdec/devconnect/internal/service"
)

// PostHandler exposes post creation and reads.
type PostHandler struct {
	posts *service.PostService
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(posts *service.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

type createPostRequest struct {
	Text string `json:"text"`
}

// HandleCreatePost creates a post authored by the caller.
func (h *PostHandler) HandleCreatePost(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	var req createPostRequest
	if err := readJSON(r, &req); err != nil {
		writeFieldErrors(w, []string{"invalid request body"})
		return
	}

	post, err := h.posts.Create(r.Context(), userID, req.Text)
	if err != nil {
		var validationErr *domain.ValidationError
		switch {
		case errors.As(err, &validationErr):
			writeFieldErrors(w, validationErr.Messages)
		case errors.Is(err, domain.ErrNotFound):
			writeMessage(w, http.StatusNotFound, "user not found")
		default:
			writeServerError(w, "create post", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, toPostDTO(post))
}

// HandleListPosts returns all posts, newest first.
func (h *PostHandler) HandleListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.List(r.Context())
	if err != nil {
		writeServerError(w, "list posts", err)
		return
	}

	dtos := make([]PostDTO, len(posts))
	for i := range posts {
		dtos[i] = toPostDTO(&posts[i])
	}
	writeJSON(w, http.StatusOK, dtos)
}

// HandleGetPost returns a single post. A malformed id is indistinguishable
// from a missing post.
func (h *PostHandler) HandleGetPost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "post not found")
		return
	}

	post, err := h.posts.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "post not found")
			return
		}
		writeServerError(w, "load post", err)
		return
	}

	writeJSON(w, http.StatusOK, toPostDTO(post))
}
