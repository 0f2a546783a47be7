package utils

import "errors"

var (
	ErrBuildingNotFound    = errors.New("building not found")
	ErrReviewNotFound      = errors.New("review not found")
	ErrInvalidListingQuery = errors.New("invalid listing query")
	ErrInvalidTransition   = errors.New("moderation status cannot change once moderated")
	ErrUnauthorized        = errors.New("authentication required")
	ErrForbidden           = errors.New("insufficient permissions")
	ErrDatabaseError       = errors.New("database error")
)

// ValidationError carries the message of the first offending input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
