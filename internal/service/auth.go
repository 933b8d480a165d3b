package service

import (
	"context"
	"crypto/md5"
	"fmt"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/msomdec/devconnect/internal/domain"
)

// AuthService handles registration, token issuance and token verification.
type AuthService struct {
	users      domain.UserRepository
	jwtSecret  []byte
	tokenTTL   time.Duration
	bcryptCost int
}

// NewAuthService creates a new AuthService.
func NewAuthService(users domain.UserRepository, jwtSecret string, tokenTTL time.Duration, bcryptCost int) *AuthService {
	return &AuthService{
		users:      users,
		jwtSecret:  []byte(jwtSecret),
		tokenTTL:   tokenTTL,
		bcryptCost: bcryptCost,
	}
}

// Register validates the input, creates the user with a derived avatar and
// a bcrypt password hash, and returns a signed token for the new identity.
// Validation failures are collected into a single ValidationError.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, error) {
	var msgs []string
	if strings.TrimSpace(name) == "" {
		msgs = append(msgs, "name is required")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		msgs = append(msgs, "a valid email address is required")
	}
	if len(password) < 6 {
		msgs = append(msgs, "password must be at least 6 characters")
	}
	if len(msgs) > 0 {
		return "", domain.NewValidationError(msgs...)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		Avatar:       AvatarURL(email),
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return "", err
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// ValidateToken parses and verifies a token string and returns the user ID
// from the sub claim. Every failure mode (bad signature, expiry, garbage
// input) collapses to ErrUnauthorized.
func (s *AuthService) ValidateToken(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return 0, domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, domain.ErrUnauthorized
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, domain.ErrUnauthorized
	}

	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, domain.ErrUnauthorized
	}

	return userID, nil
}

// CurrentUser loads the user a validated token resolved to. Returns
// ErrNotFound if the account was deleted after the token was issued.
func (s *AuthService) CurrentUser(ctx context.Context, userID int64) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}

func (s *AuthService) issueToken(userID int64) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatInt(userID, 10),
		"iat": now.Unix(),
		"exp": now.Add(s.tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// AvatarURL derives a gravatar URL from an email address. It is a pure
// function of the normalized email; no network call is made.
func AvatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=200&r=pg&d=mm", md5.Sum([]byte(normalized)))
}
