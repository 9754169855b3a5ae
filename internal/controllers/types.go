package controllers

import (
	"errors"

	bb_uuid "github.com/budgetbook/backend/internal/uuid"
)

type URIID struct {
	ID bb_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// deletedResponse is the body for successful deletes. The data object
// is always empty.
type deletedResponse struct {
	Success bool     `json:"success"`
	Data    struct{} `json:"data"`
}

// The owning budget of an income, expense or savings goal is fixed at
// creation. Moving a child between budgets would require reversing its
// contribution on one budget and applying it on another; that is not a
// supported operation.
var errBudgetImmutable = errors.New("the budget of an existing record cannot be changed")
