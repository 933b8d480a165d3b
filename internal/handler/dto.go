package handler

import (
	"time"

	"github.com/msomdec/devconnect/internal/domain"
)

// UserDTO is the public representation of a user. The password hash never
// leaves the server.
type UserDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar"`
	CreatedAt string `json:"createdAt"`
}

// OwnerDTO is the joined owner summary embedded in profile responses.
type OwnerDTO struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// SocialDTO holds optional social network links; empty links are omitted.
type SocialDTO struct {
	YouTube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// ExperienceDTO is one work history entry.
type ExperienceDTO struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Company     string  `json:"company"`
	Location    string  `json:"location,omitempty"`
	From        string  `json:"from"`
	To          *string `json:"to"`
	Current     bool    `json:"current"`
	Description string  `json:"description,omitempty"`
}

// EducationDTO is one schooling entry.
type EducationDTO struct {
	ID           string  `json:"id"`
	School       string  `json:"school"`
	Degree       string  `json:"degree"`
	FieldOfStudy string  `json:"fieldofstudy"`
	From         string  `json:"from"`
	To           *string `json:"to"`
	Current      bool    `json:"current"`
	Description  string  `json:"description,omitempty"`
}

// ProfileDTO is the full profile representation.
type ProfileDTO struct {
	ID             int64           `json:"id"`
	User           OwnerDTO        `json:"user"`
	Company        string          `json:"company,omitempty"`
	Website        string          `json:"website,omitempty"`
	Location       string          `json:"location,omitempty"`
	Bio            string          `json:"bio,omitempty"`
	Status         string          `json:"status"`
	GithubUsername string          `json:"githubusername,omitempty"`
	Skills         []string        `json:"skills"`
	Social         SocialDTO       `json:"social"`
	Experience     []ExperienceDTO `json:"experience"`
	Education      []EducationDTO  `json:"education"`
	CreatedAt      string          `json:"createdAt"`
	UpdatedAt      string          `json:"updatedAt"`
}

// PostDTO is a single post with the author snapshot taken at write time.
type PostDTO struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user"`
	Name      string `json:"name"`
	Avatar    string `json:"avatar"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

func toProfileDTO(p *domain.Profile) ProfileDTO {
	experience := make([]ExperienceDTO, len(p.Experience))
	for i, e := range p.Experience {
		experience[i] = ExperienceDTO{
			ID:          e.ID,
			Title:       e.Title,
			Company:     e.Company,
			Location:    e.Location,
			From:        e.From.Format(time.RFC3339),
			To:          formatOptionalTime(e.To),
			Current:     e.Current,
			Description: e.Description,
		}
	}

	education := make([]EducationDTO, len(p.Education))
	for i, e := range p.Education {
		education[i] = EducationDTO{
			ID:           e.ID,
			School:       e.School,
			Degree:       e.Degree,
			FieldOfStudy: e.FieldOfStudy,
			From:         e.From.Format(time.RFC3339),
			To:           formatOptionalTime(e.To),
			Current:      e.Current,
			Description:  e.Description,
		}
	}

	skills := p.Skills
	if skills == nil {
		skills = []string{}
	}

	return ProfileDTO{
		ID: p.ID,
		User: OwnerDTO{
			ID:     p.Owner.ID,
			Name:   p.Owner.Name,
			Avatar: p.Owner.Avatar,
		},
		Company:        p.Company,
		Website:        p.Website,
		Location:       p.Location,
		Bio:            p.Bio,
		Status:         p.Status,
		GithubUsername: p.GithubUsername,
		Skills:         skills,
		Social: SocialDTO{
			YouTube:   p.Social.YouTube,
			Twitter:   p.Social.Twitter,
			Facebook:  p.Social.Facebook,
			LinkedIn:  p.Social.LinkedIn,
			Instagram: p.Social.Instagram,
		},
		Experience: experience,
		Education:  education,
		CreatedAt:  p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  p.UpdatedAt.Format(time.RFC3339),
	}
}

func toPostDTO(p *domain.Post) PostDTO {
	return PostDTO{
		ID:        p.ID,
		UserID:    p.UserID,
		Name:      p.Name,
		Avatar:    p.Avatar,
		Text:      p.Text,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
}

func formatOptionalTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
