package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/msomdec/devconnect/internal/domain"
	"github.com/msomdec/devconnect/internal/service"
)

// ProfileHandler exposes profile CRUD, the experience/education sequences,
// and account deletion.
type ProfileHandler struct {
	profiles *service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profiles *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

type upsertProfileRequest struct {
	Status         string  `json:"status"`
	Skills         string  `json:"skills"`
	Company        *string `json:"company"`
	Website        *string `json:"website"`
	Location       *string `json:"location"`
	Bio            *string `json:"bio"`
	GithubUsername *string `json:"githubusername"`
	YouTube        *string `json:"youtube"`
	Twitter        *string `json:"twitter"`
	Facebook       *string `json:"facebook"`
	LinkedIn       *string `json:"linkedin"`
	Instagram      *string `json:"instagram"`
}

type experienceRequest struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	From        string `json:"from"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

type educationRequest struct {
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldofstudy"`
	From         string `json:"from"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

// HandleGetOwnProfile returns the caller's profile.
func (h *ProfileHandler) HandleGetOwnProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	profile, err := h.profiles.GetByUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "there is no profile for this user")
			return
		}
		writeServerError(w, "load own profile", err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileDTO(profile))
}

// HandleUpsertProfile creates the caller's profile or updates it in place.
func (h *ProfileHandler) HandleUpsertProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	var req upsertProfileRequest
	if err := readJSON(r, &req); err != nil {
		writeFieldErrors(w, []string{"invalid request body"})
		return
	}

	profile, err := h.profiles.Upsert(r.Context(), userID, service.ProfileInput{
		Status:         req.Status,
		Skills:         req.Skills,
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Bio:            req.Bio,
		GithubUsername: req.GithubUsername,
		YouTube:        req.YouTube,
		Twitter:        req.Twitter,
		Facebook:       req.Facebook,
		LinkedIn:       req.LinkedIn,
		Instagram:      req.Instagram,
	})
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			writeFieldErrors(w, validationErr.Messages)
			return
		}
		writeServerError(w, "upsert profile", err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileDTO(profile))
}

// HandleListProfiles returns every profile. Public.
func (h *ProfileHandler) HandleListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.profiles.List(r.Context())
	if err != nil {
		writeServerError(w, "list profiles", err)
		return
	}

	dtos := make([]ProfileDTO, len(profiles))
	for i := range profiles {
		dtos[i] = toProfileDTO(&profiles[i])
	}
	writeJSON(w, http.StatusOK, dtos)
}

// HandleGetProfileByUser returns the profile owned by the user in the path.
// Public. A malformed id is indistinguishable from a missing profile.
func (h *ProfileHandler) HandleGetProfileByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "profile not found")
		return
	}

	profile, err := h.profiles.GetByUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "profile not found")
			return
		}
		writeServerError(w, "load profile by user", err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileDTO(profile))
}

// HandleDeleteAccount removes the caller's account. The profile and posts
// go with it.
func (h *ProfileHandler) HandleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	if err := h.profiles.DeleteAccount(r.Context(), userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "user not found")
			return
		}
		writeServerError(w, "delete account", err)
		return
	}

	writeMessage(w, http.StatusOK, "user deleted")
}

// HandleAddExperience prepends a work history entry and returns the updated
// profile.
func (h *ProfileHandler) HandleAddExperience(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	var req experienceRequest
	if err := readJSON(r, &req); err != nil {
		writeFieldErrors(w, []string{"invalid request body"})
		return
	}

	profile, err := h.profiles.AddExperience(r.Context(), userID, service.ExperienceInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		h.writeMutationError(w, "add experience", err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileDTO(profile))
}

// HandleRemoveExperience deletes a work history entry by its id.
func (h *ProfileHandler) HandleRemoveExperience(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	profile, err := h.profiles.RemoveExperience(r.Context(), userID, r.PathValue("id"))
	if err != nil {
		h.writeMutationError(w, "remove experience", err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileDTO(profile))
}

// HandleAddEducation prepends a schooling entry and returns the updated
// profile.
func (h *ProfileHandler) HandleAddEducation(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	var req educationRequest
	if err := readJSON(r, &req); err != nil {
		writeFieldErrors(w, []string{"invalid request body"})
		return
	}

	profile, err := h.profiles.AddEducation(r.Context(), userID, service.EducationInput{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		h.writeMutationError(w, "add education", err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileDTO(profile))
}

// HandleRemoveEducation deletes a schooling entry by its id.
func (h *ProfileHandler) HandleRemoveEducation(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	profile, err := h.profiles.RemoveEducation(r.Context(), userID, r.PathValue("id"))
	if err != nil {
		h.writeMutationError(w, "remove education", err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileDTO(profile))
}

// writeMutationError maps service errors from sequence mutations: validation
// failures are 400, a missing profile or entry is 404, anything else 500.
func (h *ProfileHandler) writeMutationError(w http.ResponseWriter, op string, err error) {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		writeFieldErrors(w, validationErr.Messages)
	case errors.Is(err, domain.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "not found")
	default:
		writeServerError(w, op, err)
	}
}
