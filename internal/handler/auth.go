package handler

import (
	"errors"
	"net/http"

	"github.com/msomdec/devconnect/internal/domain"
	"github.com/msomdec/devconnect/internal/service"
)

// AuthHandler exposes registration and the current-user lookup.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleRegister creates a user account and returns a signed token, so the
// client is authenticated immediately after signup.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := readJSON(r, &req); err != nil {
		writeFieldErrors(w, []string{"invalid request body"})
		return
	}

	token, err := h.auth.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		var validationErr *domain.ValidationError
		switch {
		case errors.As(err, &validationErr):
			writeFieldErrors(w, validationErr.Messages)
		case errors.Is(err, domain.ErrDuplicateEmail):
			writeFieldErrors(w, []string{"a user with this email already exists"})
		default:
			writeServerError(w, "register user", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// HandleMe returns the authenticated caller's account, sans password hash.
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "no token, access denied")
		return
	}

	user, err := h.auth.CurrentUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "user not found")
			return
		}
		writeServerError(w, "load current user", err)
		return
	}

	writeJSON(w, http.StatusOK, toUserDTO(user))
}
