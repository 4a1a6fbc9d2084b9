package errs

import (
	"errors"
	"time"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicate          = errors.New("already exists")
	ErrInUse              = errors.New("still referenced")
	ErrBookUnavailable    = errors.New("book unavailable")
	ErrLoanOverdue        = errors.New("user has overdue loan")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
	ErrUnsupportedMedia   = errors.New("only JPEG, PNG and GIF images are allowed")
	ErrFileTooLarge       = errors.New("file exceeds 2MB")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrForbidden          = errors.New("forbidden")
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Timestamp time.Time         `json:"timestamp"`
	Status    int               `json:"status"`
	Error     string            `json:"error"`
	Message   string            `json:"message,omitempty"`
	Errors    map[string]string `json:"errors,omitempty"`
}
