package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an AppError
type Kind string

const (
	KindValidation         Kind = "validation"
	KindNotFound           Kind = "not_found"
	KindStorageUnavailable Kind = "storage_unavailable"
	KindStorage            Kind = "storage"
)

// StorageUnavailableMessage is reported when a collection handle is not ready.
const StorageUnavailableMessage = "Database not connected"

// AppError wraps an underlying error with an HTTP status and a client-safe message.
type AppError struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Validation reports malformed or missing input (400).
func Validation(message string) *AppError {
	return &AppError{Kind: KindValidation, Status: http.StatusBadRequest, Message: message}
}

// NotFound reports that no document matched the given identifier (404).
func NotFound(message string, err error) *AppError {
	return &AppError{Kind: KindNotFound, Status: http.StatusNotFound, Message: message, Err: err}
}

// StorageUnavailable reports a collection handle that is not ready (500).
func StorageUnavailable(err error) *AppError {
	return &AppError{
		Kind:    KindStorageUnavailable,
		Status:  http.StatusInternalServerError,
		Message: StorageUnavailableMessage,
		Err:     err,
	}
}

// Storage reports a failed query or write (500). The message is the
// underlying error text.
func Storage(err error) *AppError {
	msg := "storage error"
	if err != nil {
		msg = err.Error()
	}
	return &AppError{Kind: KindStorage, Status: http.StatusInternalServerError, Message: msg, Err: err}
}

// From converts any error into an AppError. Errors that are not already
// classified become storage errors.
func From(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Storage(err)
}

// StatusCode returns the HTTP status for err, 500 when unclassified.
func StatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}
	return From(err).Status
}
