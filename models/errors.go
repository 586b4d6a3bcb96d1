package models

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	CodeInvalidInput   = "INVALID_INPUT"
	CodeInvalidFormat  = "INVALID_FORMAT"
	CodeDuplicateTitle = "DUPLICATE_TITLE"
	CodeNotFound       = "NOT_FOUND"
	CodeInternal       = "INTERNAL_ERROR"
)

// Sentinels for errors.Is; any AppError with the same Code matches.
var (
	ErrInvalidInput   = &AppError{Code: CodeInvalidInput, Message: "invalid input"}
	ErrInvalidFormat  = &AppError{Code: CodeInvalidFormat, Message: "invalid format"}
	ErrDuplicateTitle = &AppError{Code: CodeDuplicateTitle, Message: "duplicate title"}
	ErrNotFound       = &AppError{Code: CodeNotFound, Message: "not found"}
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

type AppError struct {
	Code    string
	Message string
	Err     error
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

func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func NewInvalidInputError(message string) *AppError {
	return &AppError{Code: CodeInvalidInput, Message: message}
}

func NewInvalidFormatError(message string) *AppError {
	return &AppError{Code: CodeInvalidFormat, Message: message}
}

func NewDuplicateTitleError(title string) *AppError {
	return &AppError{
		Code:    CodeDuplicateTitle,
		Message: fmt.Sprintf("There is already a post added with the %q title.", title),
	}
}

func NewNotFoundError(resource string, key interface{}) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s %v not found", resource, key),
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Internal server error",
		Err:     err,
	}
}

// IsValidationError reports whether err is a field rule failure, the only
// kind an interactive prompt recovers from by asking again.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrInvalidFormat)
}

// StatusFor maps an error to its HTTP status.
func StatusFor(err error) int {
	switch {
	case IsValidationError(err):
		return http.StatusBadRequest
	case errors.Is(err, ErrDuplicateTitle):
		return http.StatusConflict
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func RespondWithError(c *gin.Context, err error) {
	status := StatusFor(err)

	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = NewInternalError(err)
	}

	response := ErrorResponse{Error: appErr.Message, Code: appErr.Code}
	if status != http.StatusInternalServerError && appErr.Err != nil {
		response.Details = appErr.Err.Error()
	}

	c.AbortWithStatusJSON(status, response)
}
