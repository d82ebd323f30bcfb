package errors

import (
	"net/http"

	"mihrab/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches errors by catalog identity, so a WithDetails copy still
// compares equal to its predefined error.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode && e.httpCode == t.httpCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// NewUpstreamError wraps a failed third-party request as a 502 AppError.
// Per the error handling design, upstream failures surface as component-local
// errors with no automatic retry; the client retries manually.
func NewUpstreamError(err error, upstream string) *BaseError {
	detail := ""
	if err != nil {
		detail = err.Error()
	}

	return NewBaseError(
		http.StatusBadGateway,
		"UPSTREAM_ERROR",
		upstream+" request failed",
		detail,
	)
}

// NewDatabaseExecuteError wraps an unexpected persistence failure.
func NewDatabaseExecuteError(err error, message string) *BaseError {
	detail := ""
	if err != nil {
		detail = err.Error()
	}

	return NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_ERROR",
		message,
		detail,
	)
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"this email is already registered",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"failed to create user",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"email or password is incorrect",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"invalid or expired refresh token",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"failed to process password",
		"",
	)

	ErrSessionLimitExceeded = NewBaseError(
		http.StatusTooManyRequests,
		"SESSION_LIMIT_EXCEEDED",
		"maximum number of concurrent sessions reached",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrInvalidCoordinate = NewBaseError(
		http.StatusBadRequest,
		"INVALID_COORDINATE",
		"latitude or longitude is out of range",
		"",
	)

	// Quran-related errors
	ErrSurahNotFound = NewBaseError(
		http.StatusNotFound,
		"SURAH_NOT_FOUND",
		"surah number must be between 1 and 114",
		"",
	)

	ErrAyahNotFound = NewBaseError(
		http.StatusNotFound,
		"AYAH_NOT_FOUND",
		"ayah reference not found",
		"",
	)

	// Hadith-related errors
	ErrHadithBookNotFound = NewBaseError(
		http.StatusNotFound,
		"HADITH_BOOK_NOT_FOUND",
		"unknown hadith book",
		"",
	)

	ErrHadithNotFound = NewBaseError(
		http.StatusNotFound,
		"HADITH_NOT_FOUND",
		"hadith not found in this book",
		"",
	)

	// Places-related errors
	ErrInvalidPlaceCategory = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PLACE_CATEGORY",
		"category must be mosque or restaurant",
		"",
	)

	ErrRadiusOutOfRange = NewBaseError(
		http.StatusBadRequest,
		"RADIUS_OUT_OF_RANGE",
		"search radius exceeds the allowed maximum",
		"",
	)

	// Dhikr-related errors
	ErrCounterNotFound = NewBaseError(
		http.StatusNotFound,
		"COUNTER_NOT_FOUND",
		"tasbeeh counter not found",
		"",
	)

	// Memorization-related errors
	ErrMemorizationNotFound = NewBaseError(
		http.StatusNotFound,
		"MEMORIZATION_NOT_FOUND",
		"memorization entry not found",
		"",
	)

	ErrInvalidMemorizationStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_MEMORIZATION_STATUS",
		"status must be learning, reviewing or mastered",
		"",
	)

	// Settings-related errors
	ErrSettingNotFound = NewBaseError(
		http.StatusNotFound,
		"SETTING_NOT_FOUND",
		"setting not found",
		"",
	)

	ErrUnknownSettingKey = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_SETTING_KEY",
		"unknown setting key",
		"",
	)

	// Device-related errors
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"device not found",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)
)
