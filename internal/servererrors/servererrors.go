package servererrors

import (
	"errors"
	"net/http"
)

var (
	ErrMissingToken  = errors.New("authorization header required")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("you are not allowed to perform this action")
	ErrMalformedBody = errors.New("request body is not valid JSON")
)

// ServerError carries the HTTP status a handler wants to answer with.
type ServerError struct {
	StatusCode int
	Message    string
	Errors     map[string]string
}

func New(statusCode int, message string, errs map[string]string) *ServerError {
	return &ServerError{
		StatusCode: statusCode,
		Message:    message,
		Errors:     errs,
	}
}

func (e *ServerError) Error() string {
	return e.Message
}

func BadRequest(message string) *ServerError {
	return New(http.StatusBadRequest, message, nil)
}

func Unauthorized(err error) *ServerError {
	return New(http.StatusUnauthorized, err.Error(), nil)
}
