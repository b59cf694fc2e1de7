package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewUser(t *testing.T) {
	user, err := NewUser("Ada", "Lovelace", "ada@Example.COM", "bcrypt-hash", false)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}
	if user.Email != "ada@example.com" {
		t.Errorf("Expected normalized email ada@example.com, got %s", user.Email)
	}
	if user.IsAdmin {
		t.Error("Expected admin flag to default to false")
	}
	if user.CreatedAt.IsZero() || user.UpdatedAt.IsZero() {
		t.Error("Expected non-zero timestamps")
	}
}

func TestNewUserValidation(t *testing.T) {
	tests := []struct {
		name      string
		firstName string
		lastName  string
		email     string
		hash      string
		wantField string
	}{
		{"empty first name", "", "Lovelace", "ada@example.com", "h", "first_name"},
		{"blank last name", "Ada", "   ", "ada@example.com", "h", "last_name"},
		{"first name too long", strings.Repeat("a", 51), "Lovelace", "ada@example.com", "h", "first_name"},
		{"not an email", "Ada", "Lovelace", "not-an-email", "h", "email"},
		{"email missing domain dot", "Ada", "Lovelace", "ada@example", "h", "email"},
		{"empty hash", "Ada", "Lovelace", "ada@example.com", "", "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUser(tt.firstName, tt.lastName, tt.email, tt.hash, false)
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}
			if !errors.Is(err, ErrValidation) {
				t.Errorf("Expected error to wrap ErrValidation, got %v", err)
			}
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("Expected *ValidationError, got %T", err)
			}
			if vErr.Field != tt.wantField {
				t.Errorf("Expected field %q, got %q", tt.wantField, vErr.Field)
			}
		})
	}
}

func TestUserSetNameRollback(t *testing.T) {
	user, err := NewUser("Ada", "Lovelace", "ada@example.com", "h", false)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if err := user.SetName("Grace", ""); err == nil {
		t.Fatal("Expected validation error, got nil")
	}
	if user.FirstName != "Ada" || user.LastName != "Lovelace" {
		t.Errorf("Expected name unchanged after failed update, got %s %s",
			user.FirstName, user.LastName)
	}

	if err := user.SetName("Grace", "Hopper"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if user.FirstName != "Grace" || user.LastName != "Hopper" {
		t.Errorf("Expected updated name, got %s %s", user.FirstName, user.LastName)
	}
}

func TestUserSetEmailNormalizes(t *testing.T) {
	user, err := NewUser("Ada", "Lovelace", "ada@example.com", "h", false)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if err := user.SetEmail("Ada.L@EXAMPLE.Org"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if user.Email != "Ada.L@example.org" {
		t.Errorf("Expected domain lowercased, got %s", user.Email)
	}

	if err := user.SetEmail("broken"); err == nil {
		t.Fatal("Expected validation error, got nil")
	}
	if user.Email != "Ada.L@example.org" {
		t.Errorf("Expected email unchanged after failed update, got %s", user.Email)
	}
}

func TestNormalizeEmail(t *testing.T) {
	valid := map[string]string{
		"user@example.com":       "user@example.com",
		"  user@example.com  ":   "user@example.com",
		"First.Last@Sub.Dom.Org": "First.Last@sub.dom.org",
	}
	for in, want := range valid {
		got, err := NormalizeEmail(in)
		if err != nil {
			t.Errorf("NormalizeEmail(%q): unexpected error %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", in, got, want)
		}
	}

	invalid := []string{"", "plain", "@example.com", "user@", "user@nodot", "a b@example.com"}
	for _, in := range invalid {
		if _, err := NormalizeEmail(in); !errors.Is(err, ErrInvalidEmail) {
			t.Errorf("NormalizeEmail(%q): expected ErrInvalidEmail, got %v", in, err)
		}
	}
}
