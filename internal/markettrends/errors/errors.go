package markettrendserrors

import (
	"go-apg/internal/shared/apperror"
	"net/http"
)

var (
	ErrRoleRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Role is required",
		http.StatusBadRequest,
	)

	ErrResourceTypeRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Resource Type is required",
		http.StatusBadRequest,
	)

	ErrCurrencyRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Currency is required",
		http.StatusBadRequest,
	)

	ErrInvalidResourceType = apperror.New(
		apperror.CodeInvalidInput,
		"Resource Type must be one of: Employee, Freelancer, Salarie, Pigiste",
		http.StatusBadRequest,
	)

	ErrServiceUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"Market trends analysis service is temporarily unavailable. Please try again later",
		http.StatusServiceUnavailable,
	)

	ErrInvalidModelResponse = apperror.New(
		apperror.CodeServiceUnavailable,
		"The AI model returned an invalid response format. Please try again",
		http.StatusServiceUnavailable,
	)

	ErrNotConfigured = apperror.New(
		apperror.CodeInternalError,
		"Market trends service is not properly configured",
		http.StatusInternalServerError,
	)
)
