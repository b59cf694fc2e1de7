package domain

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Maximum field lengths for User.
const (
	MaxNameLength = 50
)

// emailPattern accepts RFC-plausible addresses: one @, a non-empty local
// part, and a dotted domain. Deliverability is not checked.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// User represents a registered account. Places and reviews authored by the
// user are back-references resolved through the place and review stores by
// owner/author ID, never held on the struct itself.
type User struct {
	ID             uuid.UUID `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"` // never serialized
	IsAdmin        bool      `json:"is_admin"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a new User with the given names, email, and password hash.
// It generates a new UUID for the user ID and sets the creation/update
// timestamps. The caller is responsible for hashing the password; plaintext
// never enters the entity. Returns a ValidationError if any field fails
// validation.
func NewUser(firstName, lastName, email, hashedPassword string, isAdmin bool) (*User, error) {
	normalized, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &User{
		ID:             uuid.New(),
		FirstName:      firstName,
		LastName:       lastName,
		Email:          normalized,
		HashedPassword: hashedPassword,
		IsAdmin:        isAdmin,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}
	if err := validateName("first_name", u.FirstName); err != nil {
		return err
	}
	if err := validateName("last_name", u.LastName); err != nil {
		return err
	}
	if _, err := NormalizeEmail(u.Email); err != nil {
		return err
	}
	if u.HashedPassword == "" {
		return NewValidationError("password", "hash cannot be empty", nil)
	}
	return nil
}

// SetName updates the user's first and last name. Either assignment failing
// leaves both fields unchanged.
func (u *User) SetName(firstName, lastName string) error {
	if err := validateName("first_name", firstName); err != nil {
		return err
	}
	if err := validateName("last_name", lastName); err != nil {
		return err
	}
	u.FirstName = firstName
	u.LastName = lastName
	u.touch()
	return nil
}

// SetEmail replaces the user's email with the normalized form of the given
// address. Uniqueness is the store's concern, not validated here.
func (u *User) SetEmail(email string) error {
	normalized, err := NormalizeEmail(email)
	if err != nil {
		return err
	}
	u.Email = normalized
	u.touch()
	return nil
}

// SetHashedPassword replaces the stored password hash.
func (u *User) SetHashedPassword(hash string) error {
	if hash == "" {
		return NewValidationError("password", "hash cannot be empty", nil)
	}
	u.HashedPassword = hash
	u.touch()
	return nil
}

// SetAdmin updates the admin flag. Authorization for this change is the
// caller's responsibility.
func (u *User) SetAdmin(isAdmin bool) {
	u.IsAdmin = isAdmin
	u.touch()
}

func (u *User) touch() {
	u.UpdatedAt = time.Now().UTC()
}

// validateName enforces the shared constraint for person names: non-empty
// and at most MaxNameLength characters. Used from both construction and
// update paths.
func validateName(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(field, "cannot be empty", nil)
	}
	if utf8.RuneCountInString(value) > MaxNameLength {
		return NewValidationError(field, "must be at most 50 characters", nil)
	}
	return nil
}

// NormalizeEmail validates the address format and returns the stored form:
// trimmed, with the domain part lowercased. Returns a ValidationError
// wrapping ErrInvalidEmail if the address is malformed.
func NormalizeEmail(email string) (string, error) {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return "", NewValidationError("email", "cannot be empty", ErrInvalidEmail)
	}
	if !emailPattern.MatchString(trimmed) {
		return "", NewValidationError("email", "is not a valid address", ErrInvalidEmail)
	}
	at := strings.LastIndex(trimmed, "@")
	return trimmed[:at+1] + strings.ToLower(trimmed[at+1:]), nil
}
