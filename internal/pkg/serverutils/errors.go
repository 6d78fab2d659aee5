package serverutils

import "github.com/gofiber/fiber/v2"

// AppError is the error taxonomy surfaced by services. Controllers return
// these to the error handler middleware, which maps Code to an HTTP status
// and never leaks internal causes to the client.
type AppError struct {
	Code    int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: fiber.StatusUnauthorized, Message: message}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{Code: fiber.StatusForbidden, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Code: fiber.StatusNotFound, Message: message}
}

// NewValidationError covers both schema violations and invalid API keys on
// widget routes: callers only ever see a generic bad-request signal.
func NewValidationError(message string) *AppError {
	return &AppError{Code: fiber.StatusBadRequest, Message: message}
}

// NewConflictError is reported as 400 (duplicate slug on project creation).
func NewConflictError(message string) *AppError {
	return &AppError{Code: fiber.StatusBadRequest, Message: message}
}
