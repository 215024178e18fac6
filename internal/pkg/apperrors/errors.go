package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrInvalidFormat      = errors.New("invalid token format")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Application workflow errors
var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrApplicationLocked   = errors.New("application is locked and can no longer be edited")
	ErrInvalidStatus       = errors.New("invalid application status")
	ErrCorrectionNotes     = errors.New("correction notes are required when requesting a correction")
)

// Payment errors
var (
	ErrInvalidSignature = errors.New("payment signature verification failed")
	ErrPaymentGateway   = errors.New("payment gateway request failed")
)

// Exam / admit card errors
var (
	ErrExamCenterNotFound = errors.New("no exam center configured")
	ErrAdmitCardNotReady  = errors.New("admit card not available yet")
)

// CMS errors
var (
	ErrBlogNotFound    = errors.New("blog not found")
	ErrSectionNotFound = errors.New("gallery section not found")
	ErrImageNotFound   = errors.New("gallery image not found")
	ErrStoryNotFound   = errors.New("success story not found")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Field   string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError wrapping err with a message
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// NewValidationError creates a field-level validation error
func NewValidationError(field, message string) *CustomError {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Field:   field,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
