package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/msomdec/devconnect/internal/handler"
	"github.com/msomdec/devconnect/internal/repository/sqlite"
	"github.com/msomdec/devconnect/internal/service"
)

const testJWTSecret = "test-secret-key-for-unit-tests-0"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	// Use cost 4 for fast tests.
	auth := service.NewAuthService(db.Users(), testJWTSecret, 10*time.Hour, 4)
	profiles := service.NewProfileService(db.Profiles(), db.Users())
	posts := service.NewPostService(db.Posts(), db.Users())

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, auth, profiles, posts)

	srv := httptest.NewServer(handler.SecurityHeaders(mux))
	t.Cleanup(srv.Close)
	return srv
}

// doJSON sends a request with an optional JSON body and token and decodes
// the JSON response into out (which may be nil).
func doJSON(t *testing.T, method, url, token string, body, out any) *http.Response {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(handler.TokenHeader, token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	} else {
		io.Copy(io.Discard, resp.Body)
	}
	return resp
}

// register creates an account and returns its token.
func register(t *testing.T, srvURL, name, email string) string {
	t.Helper()
	var body struct {
		Token string `json:"token"`
	}
	resp := doJSON(t, http.MethodPost, srvURL+"/api/users", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": "password123",
	}, &body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("register %s: expected 200, got %d", email, resp.StatusCode)
	}
	if body.Token == "" {
		t.Fatal("expected a token in the register response")
	}
	return body.Token
}

type msgResponse struct {
	Msg string `json:"msg"`
}

type errorsResponse struct {
	Errors []struct {
		Msg string `json:"msg"`
	} `json:"errors"`
}
