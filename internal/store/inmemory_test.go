package store

import (
	"context"
	"errors"
	"testing"
)

func TestCreateUserAndLookup(t *testing.T) {
	s := NewInMemoryStore()
	ctx := context.Background()

	created, err := s.CreateUser(ctx, "user@example.com", "hash")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected a generated user ID")
	}

	byEmail, err := s.UserByEmail(ctx, "user@example.com")
	if err != nil {
		t.Fatalf("UserByEmail: %v", err)
	}
	if byEmail.ID != created.ID {
		t.Fatalf("UserByEmail ID = %q, want %q", byEmail.ID, created.ID)
	}

	byID, err := s.UserByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("UserByID: %v", err)
	}
	if byID.Email != "user@example.com" {
		t.Fatalf("UserByID email = %q", byID.Email)
	}
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	s := NewInMemoryStore()
	ctx := context.Background()

	if _, err := s.CreateUser(ctx, "dup@example.com", "hash"); err != nil {
		t.Fatalf("first CreateUser: %v", err)
	}
	_, err := s.CreateUser(ctx, "dup@example.com", "other")
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}
}

func TestLookupUnknownUser(t *testing.T) {
	s := NewInMemoryStore()
	ctx := context.Background()

	if _, err := s.UserByEmail(ctx, "nobody@example.com"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("UserByEmail err = %v, want ErrUserNotFound", err)
	}
	if _, err := s.UserByID(ctx, "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("UserByID err = %v, want ErrUserNotFound", err)
	}
}
