package apperror

import "net/http"

type Type string

const (
	TypeNotFound Type = "not_found"
)

// AppError is an error the domain layer raises deliberately, carrying the
// HTTP status handlers should respond with.
type AppError struct {
	Type    Type
	Status  int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

// NewNotFound reports a missing or soft-deleted entity. It maps to 400, not
// 404: existing API clients depend on that status.
func NewNotFound(message string) *AppError {
	return &AppError{
		Type:    TypeNotFound,
		Status:  http.StatusBadRequest,
		Message: message,
	}
}
