package clienterrors

import (
	"go-apg/internal/shared/apperror"
	"net/http"
)

var (
	ErrClientNotFound = apperror.New(
		apperror.CodeNotFound,
		"Client not found",
		http.StatusNotFound,
	)

	ErrClientCodeExists = apperror.New(
		apperror.CodeConflict,
		"A client with this code already exists",
		http.StatusConflict,
	)

	ErrBusinessUnitAccess = apperror.New(
		apperror.CodeForbidden,
		"You do not have access to this client's business unit",
		http.StatusForbidden,
	)

	ErrMinimumAboveTarget = apperror.New(
		apperror.CodeInvalidInput,
		"Minimum margin cannot be greater than target margin",
		http.StatusBadRequest,
	)
)
