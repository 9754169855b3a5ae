package models

import (
	"errors"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// User represents a registered user. All budgets reference a user.
//
// The password is only ever stored as a bcrypt hash. The hash is
// excluded from JSON serialization so that it can never leak into a
// response body.
type User struct {
	DefaultModel
	Name         string `json:"name"`
	Email        string `json:"email" gorm:"uniqueIndex"`
	PasswordHash string `json:"-"`
}

var (
	ErrUserEmailNotUnique = errors.New("user already exists")
	ErrUserNameLength     = errors.New("the name must be between 2 and 50 characters")
	ErrUserEmailLength    = errors.New("the email address must not be longer than 255 characters")
	ErrUserEmailInvalid   = errors.New("the email address is not valid")
	ErrPasswordLength     = errors.New("the password must be between 8 and 16 characters")
	ErrPasswordCharacters = errors.New("the password must contain at least one uppercase letter, one lowercase letter, and one number")
)

var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

var nameCaser = cases.Title(language.English)

// Normalize brings the user supplied fields into their canonical form:
// the name is collapsed to single spaces and title-cased, the email is
// trimmed and lowercased.
//
// It must be called before Validate and before the user is persisted.
func (u *User) Normalize() {
	u.Name = nameCaser.String(strings.Join(strings.Fields(u.Name), " "))
	u.Email = NormalizeEmail(u.Email)
}

// NormalizeEmail returns the canonical form of an email address.
// Lookups by email must use the same form as the stored value.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Validate checks the normalized user fields.
func (u *User) Validate() error {
	if len(u.Name) < 2 || len(u.Name) > 50 {
		return ErrUserNameLength
	}

	if len(u.Email) > 255 {
		return ErrUserEmailLength
	}

	if !emailPattern.MatchString(u.Email) {
		return ErrUserEmailInvalid
	}

	return nil
}

// ValidatePassword checks a plain text password against the password
// policy: 8 to 16 characters with at least one uppercase letter, one
// lowercase letter and one digit.
func ValidatePassword(password string) error {
	if len(password) < 8 || len(password) > 16 {
		return ErrPasswordLength
	}

	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}

	if !upper || !lower || !digit {
		return ErrPasswordCharacters
	}

	return nil
}

// SetPassword validates the plain text password against the policy and
// stores its bcrypt hash on the user.
func (u *User) SetPassword(password string) error {
	if err := ValidatePassword(password); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.PasswordHash = string(hash)
	return nil
}

// Authenticate reports whether the plain text password matches the
// stored hash.
func (u User) Authenticate(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
