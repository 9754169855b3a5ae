package controllers_test

import (
	"fmt"
	"net/http"

	"github.com/budgetbook/backend/internal/controllers"
	"github.com/budgetbook/backend/internal/models"
	"github.com/budgetbook/backend/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// errorResponse mirrors the envelope that every failed request returns.
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (suite *TestSuiteStandard) TestRegisterUser() {
	t := suite.T()

	recorder := test.Request(t, http.MethodPost, "/api/users/register", controllers.RegisterRequest{
		Name:     "  jane   doe ",
		Email:    "Jane.Doe@Example.COM",
		Password: "Passw0rd",
	})
	test.AssertHTTPStatus(t, &recorder, http.StatusCreated)

	var response controllers.UserResponse
	test.DecodeResponse(t, &recorder, &response)

	assert.True(t, response.Success)
	require.NotNil(t, response.Data)
	assert.Equal(t, "Jane Doe", response.Data.Name)
	assert.Equal(t, "jane.doe@example.com", response.Data.Email)

	// No password material may ever leave the API
	assert.NotContains(t, recorder.Body.String(), "password")
	assert.NotContains(t, recorder.Body.String(), "Passw0rd")
}

func (suite *TestSuiteStandard) TestRegisterUserInvalid() {
	tests := []struct {
		name string
		body controllers.RegisterRequest
	}{
		{"name too short", controllers.RegisterRequest{Name: "J", Email: "jane@example.com", Password: "Passw0rd"}},
		{"invalid email", controllers.RegisterRequest{Name: "Jane Doe", Email: "not-an-email", Password: "Passw0rd"}},
		{"password too short", controllers.RegisterRequest{Name: "Jane Doe", Email: "jane@example.com", Password: "Sh0rt"}},
		{"password without digits", controllers.RegisterRequest{Name: "Jane Doe", Email: "jane@example.com", Password: "NoDigitsHere"}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()

			recorder := test.Request(t, http.MethodPost, "/api/users/register", tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)

			var response errorResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.False(t, response.Success)
			assert.NotEmpty(t, response.Message)
		})
	}
}

func (suite *TestSuiteStandard) TestRegisterUserEmptyBody() {
	t := suite.T()

	recorder := test.Request(t, http.MethodPost, "/api/users/register", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestRegisterUserDuplicateEmail() {
	t := suite.T()

	_ = suite.createTestUser(models.User{Email: "jane@example.com"})

	recorder := test.Request(t, http.MethodPost, "/api/users/register", controllers.RegisterRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "Passw0rd",
	})
	test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)

	var response errorResponse
	test.DecodeResponse(t, &recorder, &response)
	assert.Equal(t, "user already exists", response.Message)
}

func (suite *TestSuiteStandard) TestLoginUser() {
	t := suite.T()

	user := models.User{Name: "Jane Doe", Email: "jane@example.com"}
	require.Nil(t, user.SetPassword("Passw0rd"))
	user = suite.createTestUser(user)

	recorder := test.Request(t, http.MethodPost, "/api/users/login", controllers.LoginRequest{
		Email:    "Jane@Example.com",
		Password: "Passw0rd",
	})
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response controllers.UserResponse
	test.DecodeResponse(t, &recorder, &response)
	require.NotNil(t, response.Data)
	assert.Equal(t, user.ID, response.Data.ID)
}

// A wrong password and an unknown email must be indistinguishable so
// that accounts cannot be enumerated through the login endpoint.
func (suite *TestSuiteStandard) TestLoginUserInvalidCredentials() {
	t := suite.T()

	user := models.User{Email: "jane@example.com"}
	require.Nil(t, user.SetPassword("Passw0rd"))
	_ = suite.createTestUser(user)

	wrongPassword := test.Request(t, http.MethodPost, "/api/users/login", controllers.LoginRequest{
		Email:    "jane@example.com",
		Password: "WrongPassw0rd",
	})
	test.AssertHTTPStatus(t, &wrongPassword, http.StatusUnauthorized)

	unknownEmail := test.Request(t, http.MethodPost, "/api/users/login", controllers.LoginRequest{
		Email:    "nobody@example.com",
		Password: "Passw0rd",
	})
	test.AssertHTTPStatus(t, &unknownEmail, http.StatusUnauthorized)

	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func (suite *TestSuiteStandard) TestGetUsers() {
	t := suite.T()

	_ = suite.createTestUser(models.User{Email: "a@example.com"})
	_ = suite.createTestUser(models.User{Email: "b@example.com"})

	recorder := test.Request(t, http.MethodGet, "/api/users", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response controllers.UserListResponse
	test.DecodeResponse(t, &recorder, &response)

	assert.True(t, response.Success)
	assert.Equal(t, 2, response.Count)
	assert.Len(t, response.Data, 2)
}

func (suite *TestSuiteStandard) TestGetUserByEmail() {
	t := suite.T()

	user := suite.createTestUser(models.User{Email: "jane@example.com"})

	recorder := test.Request(t, http.MethodGet, "/api/users/email/Jane@Example.COM", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response controllers.UserResponse
	test.DecodeResponse(t, &recorder, &response)
	require.NotNil(t, response.Data)
	assert.Equal(t, user.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestGetUserByEmailNotFound() {
	t := suite.T()

	recorder := test.Request(t, http.MethodGet, "/api/users/email/nobody@example.com", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestUsersDBError() {
	t := suite.T()

	suite.CloseDB()

	recorder := test.Request(t, http.MethodGet, "/api/users", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

	var response errorResponse
	test.DecodeResponse(t, &recorder, &response)
	assert.Equal(t, fmt.Sprint(models.ErrGeneral), response.Message)
}
