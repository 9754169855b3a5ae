package controllers

import (
	"errors"
	"net/http"

	"github.com/budgetbook/backend/internal/httputil"
	"github.com/budgetbook/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers the routes for users with
// the RouterGroup that is passed.
func RegisterUserRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", GetUsers)

	r.OPTIONS("/register", httputil.OptionsPost)
	r.POST("/register", RegisterUser)

	r.OPTIONS("/login", httputil.OptionsPost)
	r.POST("/login", LoginUser)

	r.GET("/email/:email", GetUserByEmail)
}

// RegisterUser creates a new user.
//
// Name normalization and password hashing are explicit steps of the
// write path, invoked before the user is persisted.
func RegisterUser(c *gin.Context) {
	var request RegisterRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		abortWithError(c, err)
		return
	}

	user := models.User{
		Name:  request.Name,
		Email: request.Email,
	}

	user.Normalize()
	if err := user.Validate(); err != nil {
		abortWithError(c, err)
		return
	}

	// Policy violations are a client error, not a server failure
	if err := user.SetPassword(request.Password); err != nil {
		abortWithError(c, err)
		return
	}

	// A duplicate email surfaces as a unique constraint violation
	err = models.DB.Create(&user).Error
	if err != nil {
		abortWithError(c, err)
		return
	}

	data := newUser(user)
	c.JSON(http.StatusCreated, UserResponse{Success: true, Data: &data})
}

// LoginUser checks the credentials and echoes the user back on
// success. No session or token is issued.
//
// An unknown email and a wrong password are indistinguishable to the
// caller so that the API cannot be used to enumerate accounts.
func LoginUser(c *gin.Context) {
	var request LoginRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		abortWithError(c, err)
		return
	}

	var user models.User
	err = models.DB.First(&user, "email = ?", models.NormalizeEmail(request.Email)).Error
	if err != nil {
		if errors.Is(err, models.ErrResourceNotFound) {
			c.JSON(http.StatusUnauthorized, httpError{Message: errInvalidCredentials.Error()})
			return
		}

		abortWithError(c, err)
		return
	}

	if !user.Authenticate(request.Password) {
		c.JSON(http.StatusUnauthorized, httpError{Message: errInvalidCredentials.Error()})
		return
	}

	data := newUser(user)
	c.JSON(http.StatusOK, UserResponse{Success: true, Data: &data})
}

// GetUsers returns all users.
func GetUsers(c *gin.Context) {
	var users []models.User
	err := models.DB.Order("created_at ASC").Find(&users).Error
	if err != nil {
		abortWithError(c, err)
		return
	}

	data := make([]User, 0, len(users))
	for _, user := range users {
		data = append(data, newUser(user))
	}

	c.JSON(http.StatusOK, UserListResponse{Success: true, Count: len(data), Data: data})
}

// GetUserByEmail returns the user with the given email address. The
// lookup is case-insensitive since emails are stored lowercased.
func GetUserByEmail(c *gin.Context) {
	var user models.User
	err := models.DB.First(&user, "email = ?", models.NormalizeEmail(c.Param("email"))).Error
	if err != nil {
		abortWithError(c, err)
		return
	}

	data := newUser(user)
	c.JSON(http.StatusOK, UserResponse{Success: true, Data: &data})
}
