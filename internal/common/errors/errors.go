package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrorCode identifies a class of application error.
type ErrorCode string

const (
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeValidation   ErrorCode = "VALIDATION_ERROR"
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeForbidden    ErrorCode = "FORBIDDEN"
	ErrCodeConflict     ErrorCode = "CONFLICT"
	ErrCodeBadRequest   ErrorCode = "BAD_REQUEST"

	// Upstream TURNAICASH API errors
	ErrCodeUpstreamAPI        ErrorCode = "UPSTREAM_API_ERROR"
	ErrCodeUpstreamValidation ErrorCode = "UPSTREAM_VALIDATION_ERROR"

	// Partner payment system errors
	ErrCodePartnerAPI      ErrorCode = "PARTNER_API_ERROR"
	ErrCodePlayerNotFound  ErrorCode = "PLAYER_NOT_FOUND"
	ErrCodeWrongCurrency   ErrorCode = "PLAYER_WRONG_CURRENCY"
	ErrCodeSessionExpired  ErrorCode = "SESSION_EXPIRED"
	ErrCodeCacheError      ErrorCode = "CACHE_ERROR"
	ErrCodeImageValidation ErrorCode = "IMAGE_VALIDATION_ERROR"
)

// AppError is the typed error carried through services and handlers.
// FieldErrors holds per-field messages forwarded from upstream 400 responses
// or produced by local input validation.
type AppError struct {
	Code        ErrorCode           `json:"code"`
	Message     string              `json:"message"`
	FieldErrors map[string][]string `json:"field_errors,omitempty"`
	Details     map[string]any      `json:"details,omitempty"`
	Timestamp   time.Time           `json:"timestamp"`
	RequestID   string              `json:"request_id,omitempty"`
	Cause       error               `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) IsValidation() bool {
	return e.Code == ErrCodeValidation || e.Code == ErrCodeUpstreamValidation || e.Code == ErrCodeImageValidation
}

func (e *AppError) IsUnauthorized() bool {
	return e.Code == ErrCodeUnauthorized || e.Code == ErrCodeSessionExpired
}

func (e *AppError) IsInternal() bool {
	return e.Code == ErrCodeInternal || e.Code == ErrCodeCacheError
}

// WithDetail attaches extra diagnostic information.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithField records a per-field validation message.
func (e *AppError) WithField(field, message string) *AppError {
	if e.FieldErrors == nil {
		e.FieldErrors = make(map[string][]string)
	}
	e.FieldErrors[field] = append(e.FieldErrors[field], message)
	return e
}

func (e *AppError) WithRequestID(requestID string) *AppError {
	e.RequestID = requestID
	return e
}

func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

func Wrap(err error, code ErrorCode, message string) *AppError {
	appErr := New(code, message)
	appErr.Cause = err
	return appErr
}

func Wrapf(err error, code ErrorCode, format string, args ...any) *AppError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// NewValidationError reports a local input validation failure on one field.
func NewValidationError(field, reason string) *AppError {
	return New(ErrCodeValidation, fmt.Sprintf("Validation failed for field '%s': %s", field, reason)).
		WithField(field, reason)
}

// NewBindingError converts a request binding failure into a field-level
// validation error so clients get per-field messages instead of one opaque
// decode error.
func NewBindingError(err error, message string) *AppError {
	appErr := Wrap(err, ErrCodeValidation, message)
	var fieldErrs validator.ValidationErrors
	if stderrors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			appErr.WithField(strings.ToLower(fe.Field()), "failed on the '"+fe.Tag()+"' rule")
		}
	}
	return appErr
}

// NewUpstreamError wraps a failed call to the TURNAICASH API.
func NewUpstreamError(operation string, err error) *AppError {
	return Wrap(err, ErrCodeUpstreamAPI, fmt.Sprintf("Upstream call failed: %s", operation)).
		WithDetail("operation", operation)
}

// NewPartnerError wraps a failed call to the partner payment system.
func NewPartnerError(operation string, err error) *AppError {
	return Wrap(err, ErrCodePartnerAPI, fmt.Sprintf("Partner lookup failed: %s", operation)).
		WithDetail("operation", operation)
}

// NewSessionExpiredError marks an upstream 401; the session has been cleared.
func NewSessionExpiredError() *AppError {
	return New(ErrCodeSessionExpired, "Session expired, please sign in again")
}

func NewCacheError(operation string, err error) *AppError {
	return Wrap(err, ErrCodeCacheError, fmt.Sprintf("Cache operation failed: %s", operation)).
		WithDetail("operation", operation)
}

func NewUnauthorizedError(reason string) *AppError {
	return New(ErrCodeUnauthorized, fmt.Sprintf("Unauthorized: %s", reason))
}

// AsAppError extracts an *AppError if err is one.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if err != nil {
		appErr, _ = err.(*AppError)
	}
	return appErr, appErr != nil
}
