package handler

import (
	"net/http"

	"github.com/msomdec/devconnect/internal/service"
)

// RegisterRoutes wires all HTTP routes into the mux. Registration is
// throttled per client IP; everything under /api except registration and
// the public profile reads requires a valid token.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, profiles *service.ProfileService, posts *service.PostService) {
	authHandler := NewAuthHandler(auth)
	profileHandler := NewProfileHandler(profiles)
	postHandler := NewPostHandler(posts)

	// Burst of 10 registrations per IP, refilling one every 6 seconds.
	registerLimiter := service.NewTokenBucket(1.0/6.0, 10)

	protected := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(auth, h)
	}

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.Handle("POST /api/users", RateLimit(registerLimiter, http.HandlerFunc(authHandler.HandleRegister)))
	mux.Handle("GET /api/auth", protected(authHandler.HandleMe))

	mux.Handle("GET /api/profile/me", protected(profileHandler.HandleGetOwnProfile))
	mux.Handle("POST /api/profile", protected(profileHandler.HandleUpsertProfile))
	mux.HandleFunc("GET /api/profile", profileHandler.HandleListProfiles)
	mux.HandleFunc("GET /api/profile/user/{id}", profileHandler.HandleGetProfileByUser)
	mux.Handle("DELETE /api/profile", protected(profileHandler.HandleDeleteAccount))
	mux.Handle("PUT /api/profile/experience", protected(profileHandler.HandleAddExperience))
	mux.Handle("DELETE /api/profile/experience/{id}", protected(profileHandler.HandleRemoveExperience))
	mux.Handle("PUT /api/profile/education", protected(profileHandler.HandleAddEducation))
	mux.Handle("DELETE /api/profile/education/{id}", protected(profileHandler.HandleRemoveEducation))

	mux.Handle("POST /api/posts", protected(postHandler.HandleCreatePost))
	mux.Handle("GET /api/posts", protected(postHandler.HandleListPosts))
	mux.Handle("GET /api/posts/{id}", protected(postHandler.HandleGetPost))
}
