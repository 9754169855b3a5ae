package models_test

import (
	"encoding/json"
	"testing"

	"github.com/budgetbook/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestUserNormalize() {
	tests := []struct {
		name  string
		email string

		wantName  string
		wantEmail string
	}{
		{"john doe", "John.Doe@Example.COM", "John Doe", "john.doe@example.com"},
		{"  alice   van  der berg ", " alice@example.com ", "Alice Van Der Berg", "alice@example.com"},
		{"BOB", "bob@example.com", "Bob", "bob@example.com"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.wantName, func(t *testing.T) {
			user := models.User{Name: tt.name, Email: tt.email}
			user.Normalize()

			assert.Equal(t, tt.wantName, user.Name)
			assert.Equal(t, tt.wantEmail, user.Email)
		})
	}
}

func (suite *TestSuiteStandard) TestUserValidate() {
	tests := []struct {
		name  string
		email string
		err   error
	}{
		{"Jo", "jo@example.com", nil},
		{"J", "j@example.com", models.ErrUserNameLength},
		{"John Doe", "not-an-email", models.ErrUserEmailInvalid},
		{"John Doe", "john@", models.ErrUserEmailInvalid},
		{"John Doe", "john@example.com", nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.email, func(t *testing.T) {
			user := models.User{Name: tt.name, Email: tt.email}
			assert.Equal(t, tt.err, user.Validate())
		})
	}
}

func (suite *TestSuiteStandard) TestValidatePassword() {
	tests := []struct {
		password string
		err      error
	}{
		{"Passw0rd", nil},
		{"short", models.ErrPasswordLength},
		{"Sh0rt", models.ErrPasswordLength},
		{"ThisPasswordIsMuchTooLong1", models.ErrPasswordLength},
		{"alllowercase1", models.ErrPasswordCharacters},
		{"ALLUPPERCASE1", models.ErrPasswordCharacters},
		{"NoDigitsHere", models.ErrPasswordCharacters},
	}

	for _, tt := range tests {
		suite.T().Run(tt.password, func(t *testing.T) {
			assert.Equal(t, tt.err, models.ValidatePassword(tt.password))
		})
	}
}

func (suite *TestSuiteStandard) TestUserAuthenticate() {
	t := suite.T()

	user := models.User{}
	require.Nil(t, user.SetPassword("Passw0rd"))
	require.NotEmpty(t, user.PasswordHash)

	assert.True(t, user.Authenticate("Passw0rd"))
	assert.False(t, user.Authenticate("passw0rd"))
	assert.False(t, user.Authenticate(""))
}

// The password hash must never appear in a serialized user.
func (suite *TestSuiteStandard) TestUserHashNotSerialized() {
	t := suite.T()

	user := models.User{Name: "John Doe", Email: "john@example.com"}
	require.Nil(t, user.SetPassword("Passw0rd"))

	raw, err := json.Marshal(user)
	require.Nil(t, err)

	assert.NotContains(t, string(raw), user.PasswordHash)
	assert.NotContains(t, string(raw), "passwordHash")
}

func (suite *TestSuiteStandard) TestUserEmailUnique() {
	t := suite.T()

	_ = suite.createTestUser(models.User{Email: "john@example.com"})

	duplicate := models.User{Name: "Jane Doe", Email: "john@example.com"}
	err := models.DB.Create(&duplicate).Error
	assert.ErrorIs(t, err, models.ErrUserEmailNotUnique, "Error is: %s", err)
}
