package domain

import "fmt"

// DomainError represents a domain-specific error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is lets sentinel DomainErrors match wrapped copies of themselves.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// NewDomainError creates a new DomainError
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     nil,
	}
}

// NewDomainErrorWithCause creates a new DomainError with an underlying cause
func NewDomainErrorWithCause(code, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common domain error codes
const (
	ErrCodeValidation       = "VALIDATION_ERROR"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeUnauthorized     = "UNAUTHORIZED"
	ErrCodeInternalError    = "INTERNAL_ERROR"
	ErrCodeExtractionFailed = "EXTRACTION_FAILED"
	ErrCodeEmptyDocument    = "EMPTY_DOCUMENT"
	ErrCodeNoMatch          = "NO_MATCH"
)

// Extraction errors. Both are recovered locally: the engine keeps the
// previous snapshot and the caller logs the failure.
var (
	ErrExtractionFailed     = NewDomainError(ErrCodeExtractionFailed, "could not extract text from document")
	ErrEmptyDocument        = NewDomainError(ErrCodeEmptyDocument, "document yielded no usable text")
	ErrNoDocumentConfigured = NewDomainError(ErrCodeExtractionFailed, "no source document configured")
)

// Query outcomes. NoMatch is a normal result, not a failure; it exists
// as an error code only so the HTTP layer can map it if a caller ever
// surfaces it that way.
var (
	ErrNoMatch = NewDomainError(ErrCodeNoMatch, "no entry cleared the confidence threshold")
)

// Validation errors
var (
	ErrEmptyQuery           = NewDomainError(ErrCodeValidation, "query cannot be empty")
	ErrMissingRequiredField = NewDomainError(ErrCodeValidation, "missing required field")
)

// Authorization errors
var (
	ErrInvalidAPIKey = NewDomainError(ErrCodeUnauthorized, "invalid api key")
)
