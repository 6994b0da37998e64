package dto

import "net/http"

// Error codes returned by the API. Domain error codes map onto these
// through ErrorCodeHTTPStatus; codes the map does not know default to 500.

// General error codes
const (
	ErrCodeUnknown  = "UNKNOWN"
	ErrCodeInternal = "INTERNAL_ERROR"
)

// Authentication error codes
const (
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeTokenExpired       = "TOKEN_EXPIRED"
	ErrCodeTokenInvalid       = "INVALID_TOKEN"
	ErrCodeTokenRevoked       = "TOKEN_REVOKED"
	ErrCodeForbidden          = "FORBIDDEN"
)

// Resource error codes
const (
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
)

// Lifecycle and input error codes
const (
	ErrCodeInvalidState    = "INVALID_STATE"
	ErrCodeInvalidInput    = "INVALID_INPUT"
	ErrCodeBadRequest      = "BAD_REQUEST"
	ErrCodeValidation      = "VALIDATION_ERROR"
	ErrCodeAlreadyPaid     = "ALREADY_PAID"
	ErrCodeAlreadyVerified = "ALREADY_VERIFIED"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	ErrCodeUnauthorized:       http.StatusUnauthorized,
	ErrCodeInvalidCredentials: http.StatusUnauthorized,
	ErrCodeTokenExpired:       http.StatusUnauthorized,
	ErrCodeTokenInvalid:       http.StatusUnauthorized,
	ErrCodeTokenRevoked:       http.StatusUnauthorized,
	ErrCodeForbidden:          http.StatusForbidden,

	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusConflict,

	ErrCodeInvalidState:    http.StatusBadRequest,
	ErrCodeInvalidInput:    http.StatusBadRequest,
	ErrCodeBadRequest:      http.StatusBadRequest,
	ErrCodeValidation:      http.StatusBadRequest,
	ErrCodeAlreadyPaid:     http.StatusBadRequest,
	ErrCodeAlreadyVerified: http.StatusBadRequest,

	// Domain constructor validation codes
	"INVALID_NAME":        http.StatusBadRequest,
	"INVALID_SLUG":        http.StatusBadRequest,
	"INVALID_EMAIL":       http.StatusBadRequest,
	"INVALID_PASSWORD":    http.StatusBadRequest,
	"INVALID_PRODUCT":     http.StatusBadRequest,
	"INVALID_QUESTION":    http.StatusBadRequest,
	"INVALID_RUN":         http.StatusBadRequest,
	"INVALID_FILENAME":    http.StatusBadRequest,
	"INVALID_STORAGE_KEY": http.StatusBadRequest,
	"INVALID_AMOUNT":      http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes map to 500 so dependency failures never masquerade
// as client errors.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
