// Package errors defines application-level errors carrying HTTP status
// codes and machine-readable error codes for the delivery layer.
package errors

import (
	"fmt"
	"net/http"
)

// AppError is implemented by errors that know how to present themselves
// over HTTP.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	Details() any
}

// BaseError is the standard AppError implementation.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   any
}

func (e *BaseError) Error() string {
	if e.details != nil {
		return fmt.Sprintf("%s: %v", e.message, e.details)
	}

	return e.message
}

func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() any      { return e.details }

// NewBaseError creates a BaseError with the given codes and message.
func NewBaseError(httpCode int, errorCode, message string, details any) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Input validation.

func NewInvalidInputError(details any) *BaseError {
	return NewBaseError(http.StatusBadRequest, "INVALID_INPUT", "invalid request input", details)
}

// Authentication and authorization.

func NewUnauthorizedError(message string) *BaseError {
	if message == "" {
		message = "unauthorized"
	}

	return NewBaseError(http.StatusUnauthorized, "UNAUTHORIZED", message, nil)
}

func NewInvalidCredentialsError() *BaseError {
	return NewBaseError(http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid email or password", nil)
}

func NewInvalidTokenError() *BaseError {
	return NewBaseError(http.StatusUnauthorized, "INVALID_TOKEN", "invalid or expired token", nil)
}

func NewForbiddenError(message string) *BaseError {
	if message == "" {
		message = "forbidden"
	}

	return NewBaseError(http.StatusForbidden, "FORBIDDEN", message, nil)
}

// Users.

func NewEmailAlreadyExistsError() *BaseError {
	return NewBaseError(http.StatusConflict, "EMAIL_ALREADY_EXISTS", "email is already registered", nil)
}

func NewUserNotFoundError() *BaseError {
	return NewBaseError(http.StatusNotFound, "USER_NOT_FOUND", "user not found", nil)
}

func NewWeakPasswordError(details any) *BaseError {
	return NewBaseError(http.StatusBadRequest, "WEAK_PASSWORD", "password does not meet strength requirements", details)
}

// Circles.

func NewCircleNotFoundError() *BaseError {
	return NewBaseError(http.StatusNotFound, "CIRCLE_NOT_FOUND", "circle not found", nil)
}

func NewUnknownCircleError() *BaseError {
	return NewBaseError(http.StatusNotFound, "UNKNOWN_CIRCLE", "circle does not exist", nil)
}

func NewInvalidCircleCodeError() *BaseError {
	return NewBaseError(http.StatusNotFound, "INVALID_CIRCLE_CODE", "no circle matches this code", nil)
}

func NewAlreadyMemberError() *BaseError {
	return NewBaseError(http.StatusConflict, "ALREADY_MEMBER", "user is already a member of this circle", nil)
}

func NewNotCircleMemberError() *BaseError {
	return NewBaseError(http.StatusForbidden, "NOT_CIRCLE_MEMBER", "user is not a member of this circle", nil)
}

func NewNotCircleAdminError() *BaseError {
	return NewBaseError(http.StatusForbidden, "NOT_CIRCLE_ADMIN", "only the circle admin may perform this action", nil)
}

func NewCircleFullError() *BaseError {
	return NewBaseError(http.StatusConflict, "CIRCLE_FULL", "circle has reached its member limit", nil)
}

// SOS alerts.

func NewUnknownSenderError() *BaseError {
	return NewBaseError(http.StatusNotFound, "UNKNOWN_SENDER", "sender does not exist", nil)
}

func NewAlertNotFoundError() *BaseError {
	return NewBaseError(http.StatusNotFound, "ALERT_NOT_FOUND", "alert not found", nil)
}

func NewNotRecipientError() *BaseError {
	return NewBaseError(http.StatusForbidden, "NOT_RECIPIENT", "user is not a recipient of this alert", nil)
}

func NewAlertExpiredError() *BaseError {
	return NewBaseError(http.StatusGone, "ALERT_EXPIRED", "alert is outside the acknowledgment window", nil)
}

func NewAlreadyAcknowledgedError() *BaseError {
	return NewBaseError(http.StatusConflict, "ALREADY_ACKNOWLEDGED", "alert has already been acknowledged by this user", nil)
}

// Emergency cards.

func NewCardNotFoundError() *BaseError {
	return NewBaseError(http.StatusNotFound, "CARD_NOT_FOUND", "emergency card not found", nil)
}

// Persistence.

func NewDatabaseExecuteError(details any) *BaseError {
	return NewBaseError(http.StatusInternalServerError, "DATABASE_EXECUTE_FAILED", "database operation failed", details)
}

// NewInternalError covers unexpected failures that should not leak details.
func NewInternalError() *BaseError {
	return NewBaseError(http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error", nil)
}
