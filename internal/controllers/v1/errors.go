package v1

import (
	"errors"
	"net/http"

	"github.com/spendwise/backend/internal/models"
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

	if errors.Is(err, errUnauthorized) || errors.Is(err, errInvalidCredentials) {
		return http.StatusUnauthorized
	}

	return http.StatusBadRequest
}

// Authentication errors
var (
	errUnauthorized       = errors.New("authentication is required for this endpoint")
	errInvalidCredentials = errors.New("the email or password is incorrect")
	errPasswordTooShort   = errors.New("the password must be at least 8 characters long")
)

// Budget errors
var (
	errBudgetMonthInvalid = errors.New("the month must be between 1 and 12")
	errBudgetYearInvalid  = errors.New("the year must be between 2000 and 2100")
)

// Category errors
var (
	errCategoryNameNotSet = errors.New("the name must be set")
	errCategoryInUse      = errors.New("the category is still referenced by transactions or budgets")
)

// Report errors
var (
	errMonthNotSetInQuery = errors.New("the month query parameter must be set")
	errPeriodInvalid      = errors.New("the specified report period is invalid")
)
