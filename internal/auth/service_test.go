package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/nilaydev/legalclause/internal/store"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	svc := NewService(store.NewInMemoryStore())
	ctx := context.Background()

	u, err := svc.Register(ctx, "  User@Example.COM ", "hunter22")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if u.Email != "user@example.com" {
		t.Fatalf("Email = %q, want normalized user@example.com", u.Email)
	}
	if u.PasswordHash == "hunter22" || u.PasswordHash == "" {
		t.Fatalf("password should be stored hashed")
	}

	got, err := svc.Authenticate(ctx, "user@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}
	if got.ID != u.ID {
		t.Fatalf("Authenticate returned user %q, want %q", got.ID, u.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewService(store.NewInMemoryStore())
	ctx := context.Background()

	if _, err := svc.Register(ctx, "a@b.com", "pw"); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}
	if _, err := svc.Register(ctx, "A@B.com", "pw2"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("duplicate Register() error = %v, want ErrEmailTaken", err)
	}
}

func TestRegisterMissingFields(t *testing.T) {
	svc := NewService(store.NewInMemoryStore())
	if _, err := svc.Register(context.Background(), "", "pw"); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("Register() error = %v, want ErrMissingFields", err)
	}
	if _, err := svc.Register(context.Background(), "a@b.com", ""); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("Register() error = %v, want ErrMissingFields", err)
	}
}

func TestAuthenticateWrongPassword(t *testing.T) {
	svc := NewService(store.NewInMemoryStore())
	ctx := context.Background()

	if _, err := svc.Register(ctx, "a@b.com", "correct"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if _, err := svc.Authenticate(ctx, "a@b.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("Authenticate() error = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Authenticate(ctx, "nobody@b.com", "correct"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("Authenticate() unknown email error = %v, want ErrInvalidCredentials", err)
	}
}
