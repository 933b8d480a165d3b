package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/msomdec/devconnect/internal/domain"
)

// ProfileService handles profile CRUD, the embedded experience/education
// sequences, and account deletion.
type ProfileService struct {
	profiles domain.ProfileRepository
	users    domain.UserRepository
}

// NewProfileService creates a new ProfileService.
func NewProfileService(profiles domain.ProfileRepository, users domain.UserRepository) *ProfileService {
	return &ProfileService{profiles: profiles, users: users}
}

// ProfileInput is the upsert payload. Skills is a comma-separated string.
// Optional fields distinguish "absent" (nil or empty) from "provided";
// absent fields are left untouched on update.
type ProfileInput struct {
	Status         string
	Skills         string
	Company        *string
	Website        *string
	Location       *string
	Bio            *string
	GithubUsername *string
	YouTube        *string
	Twitter        *string
	Facebook       *string
	LinkedIn       *string
	Instagram      *string
}

// ExperienceInput is the payload for adding a work history entry.
// Dates are "2006-01-02" or RFC 3339 strings.
type ExperienceInput struct {
	Title       string
	Company     string
	Location    string
	From        string
	To          string
	Current     bool
	Description string
}

// EducationInput is the payload for adding a schooling entry.
type EducationInput struct {
	School       string
	Degree       string
	FieldOfStudy string
	From         string
	To           string
	Current      bool
	Description  string
}

// Upsert creates or updates the caller's profile. Required fields are
// status and a non-empty skill list; everything else is sparse.
func (s *ProfileService) Upsert(ctx context.Context, userID int64, in ProfileInput) (*domain.Profile, error) {
	var msgs []string
	if strings.TrimSpace(in.Status) == "" {
		msgs = append(msgs, "status is required")
	}
	skills := splitSkills(in.Skills)
	if len(skills) == 0 {
		msgs = append(msgs, "at least one skill is required")
	}
	if len(msgs) > 0 {
		return nil, domain.NewValidationError(msgs...)
	}

	patch := domain.ProfilePatch{
		Status: strings.TrimSpace(in.Status),
		Skills: skills,
		Social: domain.SocialLinks{
			YouTube:   deref(in.YouTube),
			Twitter:   deref(in.Twitter),
			Facebook:  deref(in.Facebook),
			LinkedIn:  deref(in.LinkedIn),
			Instagram: deref(in.Instagram),
		},
		Company:        provided(in.Company),
		Website:        provided(in.Website),
		Location:       provided(in.Location),
		Bio:            provided(in.Bio),
		GithubUsername: provided(in.GithubUsername),
	}

	return s.profiles.Upsert(ctx, userID, patch)
}

// GetByUser returns the profile owned by userID, joined with the owner's
// name and avatar.
func (s *ProfileService) GetByUser(ctx context.Context, userID int64) (*domain.Profile, error) {
	return s.profiles.GetByUser(ctx, userID)
}

// List returns every profile, joined with owner data.
func (s *ProfileService) List(ctx context.Context) ([]domain.Profile, error) {
	return s.profiles.List(ctx)
}

// DeleteAccount removes the caller's user record; the profile and all
// posts cascade in the same statement.
func (s *ProfileService) DeleteAccount(ctx context.Context, userID int64) error {
	return s.users.Delete(ctx, userID)
}

// AddExperience validates and prepends a work history entry, so the
// sequence stays most-recent-first. Returns the updated profile.
func (s *ProfileService) AddExperience(ctx context.Context, userID int64, in ExperienceInput) (*domain.Profile, error) {
	var msgs []string
	if strings.TrimSpace(in.Title) == "" {
		msgs = append(msgs, "a title is required")
	}
	if strings.TrimSpace(in.Company) == "" {
		msgs = append(msgs, "a company is required")
	}
	from, to, dateMsgs := parseDateRange(in.From, in.To)
	msgs = append(msgs, dateMsgs...)
	if len(msgs) > 0 {
		return nil, domain.NewValidationError(msgs...)
	}

	profile, err := s.profiles.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry := domain.Experience{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(in.Title),
		Company:     strings.TrimSpace(in.Company),
		Location:    in.Location,
		From:        from,
		To:          to,
		Current:     in.Current,
		Description: in.Description,
	}
	profile.Experience = append([]domain.Experience{entry}, profile.Experience...)

	if err := s.profiles.SetExperience(ctx, userID, profile.Experience); err != nil {
		return nil, fmt.Errorf("persist experience: %w", err)
	}
	return profile, nil
}

// RemoveExperience deletes the entry with the given generated id. An
// unknown id is an explicit ErrNotFound, not a silent no-op.
func (s *ProfileService) RemoveExperience(ctx context.Context, userID int64, entryID string) (*domain.Profile, error) {
	profile, err := s.profiles.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, entry := range profile.Experience {
		if entry.ID == entryID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	profile.Experience = append(profile.Experience[:idx], profile.Experience[idx+1:]...)

	if err := s.profiles.SetExperience(ctx, userID, profile.Experience); err != nil {
		return nil, fmt.Errorf("persist experience: %w", err)
	}
	return profile, nil
}

// AddEducation validates and prepends a schooling entry. Returns the
// updated profile.
func (s *ProfileService) AddEducation(ctx context.Context, userID int64, in EducationInput) (*domain.Profile, error) {
	var msgs []string
	if strings.TrimSpace(in.School) == "" {
		msgs = append(msgs, "a school is required")
	}
	if strings.TrimSpace(in.Degree) == "" {
		msgs = append(msgs, "a degree is required")
	}
	if strings.TrimSpace(in.FieldOfStudy) == "" {
		msgs = append(msgs, "a field of study is required")
	}
	from, to, dateMsgs := parseDateRange(in.From, in.To)
	msgs = append(msgs, dateMsgs...)
	if len(msgs) > 0 {
		return nil, domain.NewValidationError(msgs...)
	}

	profile, err := s.profiles.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry := domain.Education{
		ID:           uuid.NewString(),
		School:       strings.TrimSpace(in.School),
		Degree:       strings.TrimSpace(in.Degree),
		FieldOfStudy: strings.TrimSpace(in.FieldOfStudy),
		From:         from,
		To:           to,
		Current:      in.Current,
		Description:  in.Description,
	}
	profile.Education = append([]domain.Education{entry}, profile.Education...)

	if err := s.profiles.SetEducation(ctx, userID, profile.Education); err != nil {
		return nil, fmt.Errorf("persist education: %w", err)
	}
	return profile, nil
}

// RemoveEducation deletes the entry with the given generated id, failing
// explicitly on unknown ids.
func (s *ProfileService) RemoveEducation(ctx context.Context, userID int64, entryID string) (*domain.Profile, error) {
	profile, err := s.profiles.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, entry := range profile.Education {
		if entry.ID == entryID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	profile.Education = append(profile.Education[:idx], profile.Education[idx+1:]...)

	if err := s.profiles.SetEducation(ctx, userID, profile.Education); err != nil {
		return nil, fmt.Errorf("persist education: %w", err)
	}
	return profile, nil
}

// splitSkills turns a comma-separated string into a trimmed, ordered list,
// dropping empty segments.
func splitSkills(s string) []string {
	var skills []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}

// parseDateRange parses the required from-date and the optional to-date,
// collecting messages instead of failing on the first problem.
func parseDateRange(fromStr, toStr string) (time.Time, *time.Time, []string) {
	var msgs []string
	var from time.Time
	var to *time.Time

	if strings.TrimSpace(fromStr) == "" {
		msgs = append(msgs, "a start date is required")
	} else {
		parsed, err := parseDate(fromStr)
		if err != nil {
			msgs = append(msgs, "the start date must be a valid date")
		} else {
			from = parsed
		}
	}

	if strings.TrimSpace(toStr) != "" {
		parsed, err := parseDate(toStr)
		if err != nil {
			msgs = append(msgs, "the end date must be a valid date")
		} else {
			to = &parsed
		}
	}

	return from, to, msgs
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(*p)
}

// provided normalizes an optional field: nil or blank means "not
// provided", matching the sparse-update contract.
func provided(p *string) *string {
	if p == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*p)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
