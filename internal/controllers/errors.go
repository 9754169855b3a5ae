package controllers

import (
	"errors"
	"net/http"

	"github.com/budgetbook/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// httpError is the response body for every failed request.
type httpError struct {
	Success bool   `json:"success"`
	Message string `json:"message" example:"there is no budget matching your query"`
}

var errInvalidCredentials = errors.New("invalid credentials")

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// abortWithError writes the error envelope for the error's status.
func abortWithError(c *gin.Context, err error) {
	c.JSON(status(err), httpError{Message: err.Error()})
}
