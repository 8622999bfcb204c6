package v1

import (
	"errors"
	"net/http"

	"github.com/centsible/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, models.ErrBudgetMonthNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errBudgetNotSetInQuery = errors.New("the budget query parameter must be set")
	errMonthNotSetInQuery  = errors.New("the month query parameter must be set")
	errMonthModeInvalid    = errors.New("the mode must be ALLOCATE_LAST_MONTH_BUDGET")
)

// Transaction errors
var errTransferAccountNotSet = errors.New("the transferAccountId must be set for transfers")
