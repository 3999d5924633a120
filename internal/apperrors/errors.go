package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the acting user may not perform the operation.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidAmount indicates a settlement or posting amount that is not positive
// or that exceeds the outstanding due/balance it is applied against.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrConsistencyViolation indicates that an invariant no longer holds after a store write.
// It is never corrected automatically.
var ErrConsistencyViolation = errors.New("consistency violation")

// ErrStoreUnavailable indicates that a query or write failed at the storage boundary.
var ErrStoreUnavailable = errors.New("store unavailable")

// ErrConcurrentUpdate indicates that a write lost a race with another writer
// (serialization failure, deadlock or stale version). The operation may be retried.
var ErrConcurrentUpdate = errors.New("concurrent update")

// ErrUnsupportedQuery indicates that the store rejected a query shape it lacks
// the capability (function, index or feature) to run. Callers may retry once
// with a narrower query.
var ErrUnsupportedQuery = errors.New("unsupported query")

// AppError carries an HTTP-like status code alongside the underlying cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError. A nil err is allowed.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is maps the status code onto the sentinel taxonomy so callers can use errors.Is
// without knowing how a repository reported the failure.
func (e *AppError) Is(target error) bool {
	switch target {
	case ErrStoreUnavailable:
		return e.Code >= http.StatusInternalServerError
	case ErrNotFound:
		return e.Code == http.StatusNotFound
	case ErrValidation:
		return e.Code == http.StatusBadRequest
	case ErrConsistencyViolation:
		return e.Code == http.StatusConflict
	}
	return false
}

// NewInvalidAmountError wraps ErrInvalidAmount with a human readable reason.
func NewInvalidAmountError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidAmount, fmt.Sprintf(format, args...))
}

// NewConsistencyError wraps ErrConsistencyViolation with the failed check.
func NewConsistencyError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConsistencyViolation, fmt.Sprintf(format, args...))
}

// HTTPStatus maps an error onto the status code handlers respond with.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrDuplicate), errors.Is(err, ErrConsistencyViolation), errors.Is(err, ErrConcurrentUpdate):
		return http.StatusConflict
	case errors.Is(err, ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
