package v1

import (
	"errors"
	"net/http"

	"github.com/duewise/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errProfileNotSet = errors.New("the profile query parameter must be set")
	errMonthInvalid  = errors.New("the month must be in YYYY-MM format")
	errDateInvalid   = errors.New("the date must be in YYYY-MM-DD format")
	errMonthsInvalid = errors.New("months must be between 1 and 24")
	errGroupInvalid  = errors.New("groups must be a comma separated list of credit_cards, installments, loans, recurring_expenses, income, other")
)
