package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/nilaydev/legalclause/internal/store"
)

var (
	ErrMissingFields      = errors.New("email and password are required")
	ErrEmailTaken         = store.ErrEmailTaken
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Service handles registration and login against the user store.
type Service struct {
	users store.Users
}

func NewService(users store.Users) *Service {
	return &Service{users: users}
}

// Register creates an account. Emails are trimmed and lowercased before the
// uniqueness check so "A@x.com" and "a@x.com" are the same account.
func (s *Service) Register(ctx context.Context, email, password string) (store.User, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return store.User{}, ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return store.User{}, fmt.Errorf("hash password: %w", err)
	}

	return s.users.CreateUser(ctx, email, string(hash))
}

// Authenticate verifies credentials. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *Service) Authenticate(ctx context.Context, email, password string) (store.User, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return store.User{}, ErrInvalidCredentials
	}

	u, err := s.users.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return store.User{}, ErrInvalidCredentials
		}
		return store.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return store.User{}, ErrInvalidCredentials
	}
	return u, nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
