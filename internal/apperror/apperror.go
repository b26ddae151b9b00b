package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("conflict")
)

// User-facing messages for comment validation failures. The handlers render
// these verbatim above the comment form.
const (
	EmptyCommentMessage     = "You cannot submit an empty comment."
	DuplicateCommentMessage = "That comment has already been posted!"
)

type AppError struct {
	Err     error  // actual error
	Message string // Human-readable error message
	Field   string // Optional: field causing the error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(resource, id string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %s", resource, id),
	}
}

func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

// EmptyComment is the validation failure for a blank comment submission.
func EmptyComment() *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: EmptyCommentMessage,
		Field:   "text",
	}
}

// DuplicateComment is the conflict raised when the same (author, text) pair
// has already been posted on the same video.
func DuplicateComment() *AppError {
	return &AppError{
		Err:     ErrConflict,
		Message: DuplicateCommentMessage,
		Field:   "text",
	}
}
