package domain

import (
	"context"
	"time"
)

// SocialLinks holds a profile's social network URLs. The whole object is
// rebuilt from the provided links on every profile upsert.
type SocialLinks struct {
	YouTube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// Experience is a work history entry embedded in a profile. Entries are
// kept most-recent-first and addressed by their generated ID.
type Experience struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location,omitempty"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current"`
	Description string     `json:"description,omitempty"`
}

// Education is a schooling entry embedded in a profile, ordered like
// Experience.
type Education struct {
	ID           string     `json:"id"`
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldofstudy"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to,omitempty"`
	Current      bool       `json:"current"`
	Description  string     `json:"description,omitempty"`
}

// ProfileOwner is the slice of user data joined into profile reads.
type ProfileOwner struct {
	ID     int64
	Name   string
	Avatar string
}

// Profile is a user's public profile. At most one exists per user.
type Profile struct {
	ID             int64
	UserID         int64
	Owner          ProfileOwner
	Company        string
	Website        string
	Location       string
	Bio            string
	Status         string
	GithubUsername string
	Skills         []string
	Social         SocialLinks
	Experience     []Experience
	Education      []Education
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ProfilePatch is a sparse update document. Status and Skills are always
// set (they are required on every upsert); nil pointer fields are left
// untouched on update and absent on create.
type ProfilePatch struct {
	Status         string
	Skills         []string
	Social         SocialLinks
	Company        *string
	Website        *string
	Location       *string
	Bio            *string
	GithubUsername *string
}

// ProfileRepository defines persistence operations for profiles.
type ProfileRepository interface {
	// Upsert creates or partially updates the profile owned by userID in a
	// single atomic statement, then returns the joined result. Concurrent
	// upserts for the same owner must never produce two profiles.
	Upsert(ctx context.Context, userID int64, patch ProfilePatch) (*Profile, error)
	GetByUser(ctx context.Context, userID int64) (*Profile, error)
	List(ctx context.Context) ([]Profile, error)
	SetExperience(ctx context.Context, userID int64, entries []Experience) error
	SetEducation(ctx context.Context, userID int64, entries []Education) error
}
