package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput            = "INVALID_INPUT"
	CodeUnauthorized            = "UNAUTHORIZED"
	CodeForbidden               = "FORBIDDEN"
	CodeNotFound                = "NOT_FOUND"
	CodeConflict                = "CONFLICT"
	CodeInvalidState            = "INVALID_STATE"
	CodeIncompleteConfiguration = "INCOMPLETE_CONFIGURATION"
	CodeMissingGlobalSettings   = "MISSING_GLOBAL_SETTINGS"
	CodeTooManyRequests         = "TOO_MANY_REQUESTS"

	// Server errors (5xx)
	CodeInternalError      = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)
