package salarysettingserrors

import (
	"go-apg/internal/shared/apperror"
	"net/http"
)

var (
	ErrSettingsNotFound = apperror.New(
		apperror.CodeNotFound,
		"Global salary settings not found",
		http.StatusNotFound,
	)

	ErrInvalidEmployerChargesRate = apperror.New(
		apperror.CodeInvalidInput,
		"Employer charges rate must be between 0 and 200 percent",
		http.StatusBadRequest,
	)

	ErrInvalidIndirectAnnualCosts = apperror.New(
		apperror.CodeInvalidInput,
		"Indirect annual costs cannot be negative",
		http.StatusBadRequest,
	)

	ErrInvalidBillableHours = apperror.New(
		apperror.CodeInvalidInput,
		"Billable hours per year must be between 1 and 3000",
		http.StatusBadRequest,
	)

	ErrCannotDeleteActive = apperror.New(
		apperror.CodeInvalidState,
		"Cannot delete an active configuration. Activate a different configuration first",
		http.StatusBadRequest,
	)

	ErrCannotDeleteLast = apperror.New(
		apperror.CodeInvalidState,
		"Cannot delete the only global salary configuration. At least one configuration must exist",
		http.StatusBadRequest,
	)

	ErrConcurrentActivation = apperror.New(
		apperror.CodeConflict,
		"Another configuration was activated at the same time, retry the request",
		http.StatusConflict,
	)
)
