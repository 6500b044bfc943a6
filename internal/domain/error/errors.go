// Package error defines domain-specific errors for the Friends of Mine application.
package error

import "errors"

// Persistence domain errors.
var (
	// ErrInvalidArgument is returned when a save operation receives no entity.
	ErrInvalidArgument = errors.New("entity must not be nil")

	// ErrUtilisateurNotFound is returned by repositories when no user matches an identifier.
	ErrUtilisateurNotFound = errors.New("utilisateur not found")

	// ErrActiviteNotFound is returned by repositories when no activity matches an identifier.
	ErrActiviteNotFound = errors.New("activite not found")

	// ErrResponsableRequired is returned when an activity is saved without a responsable.
	ErrResponsableRequired = errors.New("activite requires a responsable")

	// ErrResponsableNotFound is returned when an activity references an unknown user.
	ErrResponsableNotFound = errors.New("responsable not found")
)

// ErrorCode defines error codes exposed by the API.
// Format: FOM-XXYYYY where XX is category and YYYY is specific error.
type ErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidArgument     ErrorCode = "FOM-010001"
	ErrCodeInvalidRequestBody  ErrorCode = "FOM-010002"
	ErrCodeInvalidID           ErrorCode = "FOM-010003"
	ErrCodeResponsableRequired ErrorCode = "FOM-010004"

	// Lookup errors (02XXXX)
	ErrCodeUtilisateurNotFound ErrorCode = "FOM-020001"
	ErrCodeActiviteNotFound    ErrorCode = "FOM-020002"
	ErrCodeResponsableNotFound ErrorCode = "FOM-020003"

	// Traffic errors (03XXXX)
	ErrCodeRateLimited ErrorCode = "FOM-030001"

	// Internal errors (09XXXX)
	ErrCodeInternal ErrorCode = "FOM-090001"
)

// FriendsError represents a domain error with code and message.
type FriendsError struct {
	Code    ErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *FriendsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *FriendsError) Unwrap() error {
	return e.Err
}

// NewFriendsError creates a new FriendsError with the given code and message.
func NewFriendsError(code ErrorCode, message string, err error) *FriendsError {
	return &FriendsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
