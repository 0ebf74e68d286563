package apperror

import "net/http"

// AppError carries an HTTP status code alongside the message so the error
// middleware can map business-rule failures straight onto responses.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// BadRequest covers malformed, duplicate, or missing input.
func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, message, nil)
}

// Forbidden covers authenticated but unauthorized callers.
func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, message, nil)
}

// NotFound covers missing resources and empty search results, and is also
// used where a forbidden resource should be indistinguishable from an
// absent one.
func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal Server Error", err)
}
