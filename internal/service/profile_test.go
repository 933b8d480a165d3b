package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/msomdec/devconnect/internal/domain"
	"github.com/msomdec/devconnect/internal/repository/sqlite"
	"github.com/msomdec/devconnect/internal/service"
)

func newTestProfileService(t *testing.T) (*service.ProfileService, *sqlite.DB) {
	t.Helper()
	db := newTestDB(t)
	return service.NewProfileService(db.Profiles(), db.Users()), db
}

func createUser(t *testing.T, db *sqlite.DB, email string) *domain.User {
	t.Helper()
	user := &domain.User{Name: "Test User", Email: email, PasswordHash: "hash"}
	if err := db.Users().Create(context.Background(), user); err != nil {
		t.Fatalf("Create user: %v", err)
	}
	return user
}

func str(s string) *string { return &s }

func TestProfileService_Upsert_Create(t *testing.T) {
	svc, db := newTestProfileService(t)
	ctx := context.Background()

	user := createUser(t, db, "p@example.com")

	profile, err := svc.Upsert(ctx, user.ID, service.ProfileInput{
		Status:  "Developer",
		Skills:  "Go, SQL , ,HTTP",
		Company: str("Acme"),
		Twitter: str("https://twitter.com/acme"),
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	want := []string{"Go", "SQL", "HTTP"}
	if len(profile.Skills) != len(want) {
		t.Fatalf("expected skills %v, got %v", want, profile.Skills)
	}
	for i, skill := range want {
		if profile.Skills[i] != skill {
			t.Errorf("skill %d: expected %q, got %q", i, skill, profile.Skills[i])
		}
	}
	if profile.Company != "Acme" {
		t.Errorf("unexpected company %q", profile.Company)
	}
	if profile.Social.Twitter != "https://twitter.com/acme" {
		t.Errorf("unexpected twitter %q", profile.Social.Twitter)
	}
}

func TestProfileService_Upsert_ValidationMessages(t *testing.T) {
	svc, db := newTestProfileService(t)
	user := createUser(t, db, "v@example.com")

	_, err := svc.Upsert(context.Background(), user.ID, service.ProfileInput{
		Status: "  ",
		Skills: " , ,",
	})

	var validationErr *domain.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	want := []string{"status is required", "at least one skill is required"}
	if len(validationErr.Messages) != len(want) {
		t.Fatalf("expected %v, got %v", want, validationErr.Messages)
	}
	for i, msg := range want {
		if validationErr.Messages[i] != msg {
			t.Errorf("message %d: expected %q, got %q", i, msg, validationErr.Messages[i])
		}
	}
}

func TestProfileService_Upsert_SparseUpdate(t *testing.T) {
	svc, db := newTestProfileService(t)
	ctx := context.Background()
	user := createUser(t, db, "sparse@example.com")

	if _, err := svc.Upsert(ctx, user.ID, service.ProfileInput{
		Status:   "Developer",
		Skills:   "Go",
		Location: str("Berlin"),
	}); err != nil {
		t.Fatalf("first Upsert: %v", err)
	}

	// Blank optional fields count as not provided and must not clobber.
	profile, err := svc.Upsert(ctx, user.ID, service.ProfileInput{
		Status:   "Lead",
		Skills:   "Go, SQL",
		Location: str("   "),
	})
	if err != nil {
		t.Fatalf("second Upsert: %v", err)
	}

	if profile.Location != "Berlin" {
		t.Errorf("expected location to survive sparse update, got %q", profile.Location)
	}
	if profile.Status != "Lead" {
		t.Errorf("unexpected status %q", profile.Status)
	}
}

func TestProfileService_AddExperience_PrependsNewest(t *testing.T) {
	svc, db := newTestProfileService(t)
	ctx := context.Background()
	user := createUser(t, db, "exp@example.com")

	if _, err := svc.Upsert(ctx, user.ID, service.ProfileInput{Status: "Dev", Skills: "Go"}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	if _, err := svc.AddExperience(ctx, user.ID, service.ExperienceInput{
		Title: "Junior Engineer", Company: "First Corp", From: "2018-01-01", To: "2020-06-30",
	}); err != nil {
		t.Fatalf("first AddExperience: %v", err)
	}

	profile, err := svc.AddExperience(ctx, user.ID, service.ExperienceInput{
		Title: "Senior Engineer", Company: "Second Corp", From: "2020-07-01", Current: true,
	})
	if err != nil {
		t.Fatalf("second AddExperience: %v", err)
	}

	if len(profile.Experience) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(profile.Experience))
	}
	if profile.Experience[0].Title != "Senior Engineer" {
		t.Errorf("expected newest entry first, got %q", profile.Experience[0].Title)
	}
	if profile.Experience[1].Title != "Junior Engineer" {
		t.Errorf("expected oldest entry last, got %q", profile.Experience[1].Title)
	}
	if profile.Experience[0].ID == "" || profile.Experience[0].ID == profile.Experience[1].ID {
		t.Error("expected distinct generated entry ids")
	}
}

func TestProfileService_AddExperience_ValidationMessages(t *testing.T) {
	svc, db := newTestProfileService(t)
	ctx := context.Background()
	user := createUser(t, db, "expval@example.com")

	_, err := svc.AddExperience(ctx, user.ID, service.ExperienceInput{From: "not-a-date"})

	var validationErr *domain.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	want := []string{
		"a title is required",
		"a company is required",
		"the start date must be a valid date",
	}
	if len(validationErr.Messages) != len(want) {
		t.Fatalf("expected %v, got %v", want, validationErr.Messages)
	}
}

func TestProfileService_AddExperience_NoProfile(t *testing.T) {
	svc, db := newTestProfileService(t)
	user := createUser(t, db, "noprof@example.com")

	_, err := svc.AddExperience(context.Background(), user.ID, service.ExperienceInput{
		Title: "Engineer", Company: "Acme", From: "2020-01-01",
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProfileService_RemoveExperience(t *testing.T) {
	svc, db := newTestProfileService(t)
	ctx := context.Background()
	user := createUser(t, db, "rm@example.com")

	if _, err := svc.Upsert(ctx, user.ID, service.ProfileInput{Status: "Dev", Skills: "Go"}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	profile, err := svc.AddExperience(ctx, user.ID, service.ExperienceInput{
		Title: "Engineer", Company: "Acme", From: "2020-01-01",
	})
	if err != nil {
		t.Fatalf("AddExperience: %v", err)
	}

	updated, err := svc.RemoveExperience(ctx, user.ID, profile.Experience[0].ID)
	if err != nil {
		t.Fatalf("RemoveExperience: %v", err)
	}
	if len(updated.Experience) != 0 {
		t.Fatalf("expected empty experience, got %v", updated.Experience)
	}
}

func TestProfileService_RemoveExperience_UnknownID(t *testing.T) {
	svc, db := newTestProfileService(t)
	ctx := context.Background()
	user := createUser(t, db, "rmu@example.com")

	if _, err := svc.Upsert(ctx, user.ID, service.ProfileInput{Status: "Dev", Skills: "Go"}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	_, err := svc.RemoveExperience(ctx, user.ID, "does-not-exist")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown entry id, got %v", err)
	}
}

func TestProfileService_Education_AddAndRemove(t *testing.T) {
	svc, db := newTestProfileService(t)
	ctx := context.Background()
	user := createUser(t, db, "edu@example.com")

	if _, err := svc.Upsert(ctx, user.ID, service.ProfileInput{Status: "Dev", Skills: "Go"}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	profile, err := svc.AddEducation(ctx, user.ID, service.EducationInput{
		School: "State University", Degree: "BSc", FieldOfStudy: "CS", From: "2015-09-01", To: "2019-06-30",
	})
	if err != nil {
		t.Fatalf("AddEducation: %v", err)
	}
	if len(profile.Education) != 1 || profile.Education[0].School != "State University" {
		t.Fatalf("unexpected education %v", profile.Education)
	}

	updated, err := svc.RemoveEducation(ctx, user.ID, profile.Education[0].ID)
	if err != nil {
		t.Fatalf("RemoveEducation: %v", err)
	}
	if len(updated.Education) != 0 {
		t.Fatalf("expected empty education, got %v", updated.Education)
	}

	if _, err := svc.RemoveEducation(ctx, user.ID, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProfileService_AddEducation_ValidationMessages(t *testing.T) {
	svc, db := newTestProfileService(t)
	user := createUser(t, db, "eduval@example.com")

	_, err := svc.AddEducation(context.Background(), user.ID, service.EducationInput{})

	var validationErr *domain.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	want := []string{
		"a school is required",
		"a degree is required",
		"a field of study is required",
		"a start date is required",
	}
	if len(validationErr.Messages) != len(want) {
		t.Fatalf("expected %v, got %v", want, validationErr.Messages)
	}
}

func TestProfileService_DeleteAccount(t *testing.T) {
	svc, db := newTestProfileService(t)
	ctx := context.Background()
	user := createUser(t, db, "deleted@example.com")

	if _, err := svc.Upsert(ctx, user.ID, service.ProfileInput{Status: "Dev", Skills: "Go"}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	if err := svc.DeleteAccount(ctx, user.ID); err != nil {
		t.Fatalf("DeleteAccount: %v", err)
	}

	if _, err := db.Users().GetByID(ctx, user.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected user gone, got %v", err)
	}
	if _, err := svc.GetByUser(ctx, user.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected profile gone, got %v", err)
	}

	if err := svc.DeleteAccount(ctx, user.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
