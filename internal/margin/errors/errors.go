package marginerrors

import (
	"go-apg/internal/shared/apperror"
	"net/http"
)

var (
	ErrInvalidResourceType = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid resource type. Accepted values: Salarie, Pigiste",
		http.StatusBadRequest,
	)

	ErrClientNotFound = apperror.New(
		apperror.CodeNotFound,
		"Client not found",
		http.StatusNotFound,
	)

	ErrIncompleteConfiguration = apperror.New(
		apperror.CodeIncompleteConfiguration,
		"Client financial configuration is incomplete",
		http.StatusUnprocessableEntity,
	)

	ErrSalaryRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Annual gross salary is required for a salaried resource",
		http.StatusBadRequest,
	)

	ErrMissingGlobalSettings = apperror.New(
		apperror.CodeMissingGlobalSettings,
		"No active global salary settings found. Configure them before simulating a salaried resource",
		http.StatusUnprocessableEntity,
	)

	ErrInvalidHistoryQuery = apperror.New(
		apperror.CodeInvalidInput,
		"client_id must be a positive integer",
		http.StatusBadRequest,
	)
)
