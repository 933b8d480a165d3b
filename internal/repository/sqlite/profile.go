package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/msomdec/devconnect/internal/domain"
)

// ProfileRepository implements domain.ProfileRepository using SQLite.
// Embedded sequences (skills, social, experience, education) live as JSON
// columns on the single profile row, so every mutation is one statement.
type ProfileRepository struct {
	db *sql.DB
}

const profileColumns = `p.id, p.user_id, u.name, u.avatar,
	p.company, p.website, p.location, p.bio, p.status, p.github_username,
	p.skills, p.social, p.experience, p.education, p.created_at, p.updated_at`

// Upsert creates or partially updates the profile owned by userID. The
// statement is a conditional upsert keyed on user_id: only the columns
// present in the patch appear in the DO UPDATE clause, so omitted fields
// survive updates untouched, and two concurrent calls for a new owner can
// never insert two rows.
func (r *ProfileRepository) Upsert(ctx context.Context, userID int64, patch domain.ProfilePatch) (*domain.Profile, error) {
	skillsJSON, err := json.Marshal(patch.Skills)
	if err != nil {
		return nil, fmt.Errorf("marshal skills: %w", err)
	}
	socialJSON, err := json.Marshal(patch.Social)
	if err != nil {
		return nil, fmt.Errorf("marshal social: %w", err)
	}

	now := time.Now().UTC()
	cols := []string{"user_id", "status", "skills", "social", "created_at", "updated_at"}
	args := []any{userID, patch.Status, string(skillsJSON), string(socialJSON), now, now}
	sets := []string{
		"status=excluded.status",
		"skills=excluded.skills",
		"social=excluded.social",
		"updated_at=excluded.updated_at",
	}

	for _, f := range []struct {
		col string
		val *string
	}{
		{"company", patch.Company},
		{"website", patch.Website},
		{"location", patch.Location},
		{"bio", patch.Bio},
		{"github_username", patch.GithubUsername},
	} {
		if f.val == nil {
			continue
		}
		cols = append(cols, f.col)
		args = append(args, *f.val)
		sets = append(sets, f.col+"=excluded."+f.col)
	}

	query := fmt.Sprintf(
		`INSERT INTO profiles (%s) VALUES (%s) ON CONFLICT(user_id) DO UPDATE SET %s`,
		strings.Join(cols, ", "),
		strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", "),
		strings.Join(sets, ", "),
	)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}

	return r.GetByUser(ctx, userID)
}

func (r *ProfileRepository) GetByUser(ctx context.Context, userID int64) (*domain.Profile, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+profileColumns+`
		 FROM profiles p JOIN users u ON u.id = p.user_id
		 WHERE p.user_id = ?`, userID,
	)
	profile, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query profile by user: %w", err)
	}
	return profile, nil
}

func (r *ProfileRepository) List(ctx context.Context) ([]domain.Profile, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+profileColumns+`
		 FROM profiles p JOIN users u ON u.id = p.user_id
		 ORDER BY p.id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query profiles: %w", err)
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		profiles = append(profiles, *profile)
	}
	return profiles, rows.Err()
}

func (r *ProfileRepository) SetExperience(ctx context.Context, userID int64, entries []domain.Experience) error {
	return r.setSequence(ctx, userID, "experience", entries)
}

func (r *ProfileRepository) SetEducation(ctx context.Context, userID int64, entries []domain.Education) error {
	return r.setSequence(ctx, userID, "education", entries)
}

func (r *ProfileRepository) setSequence(ctx context.Context, userID int64, column string, entries any) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", column, err)
	}

	// column is one of the fixed names above, never caller input.
	result, err := r.db.ExecContext(ctx,
		fmt.Sprintf("UPDATE profiles SET %s = ?, updated_at = ? WHERE user_id = ?", column),
		string(data), time.Now().UTC(), userID,
	)
	if err != nil {
		return fmt.Errorf("update %s: %w", column, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanProfile(row scanner) (*domain.Profile, error) {
	profile := &domain.Profile{}
	var skillsJSON, socialJSON, experienceJSON, educationJSON string

	err := row.Scan(
		&profile.ID, &profile.UserID, &profile.Owner.Name, &profile.Owner.Avatar,
		&profile.Company, &profile.Website, &profile.Location, &profile.Bio,
		&profile.Status, &profile.GithubUsername,
		&skillsJSON, &socialJSON, &experienceJSON, &educationJSON,
		&profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	profile.Owner.ID = profile.UserID

	if err := json.Unmarshal([]byte(skillsJSON), &profile.Skills); err != nil {
		return nil, fmt.Errorf("unmarshal skills: %w", err)
	}
	if err := json.Unmarshal([]byte(socialJSON), &profile.Social); err != nil {
		return nil, fmt.Errorf("unmarshal social: %w", err)
	}
	if err := json.Unmarshal([]byte(experienceJSON), &profile.Experience); err != nil {
		return nil, fmt.Errorf("unmarshal experience: %w", err)
	}
	if err := json.Unmarshal([]byte(educationJSON), &profile.Education); err != nil {
		return nil, fmt.Errorf("unmarshal education: %w", err)
	}
	return profile, nil
}
