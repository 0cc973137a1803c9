// Package apperror defines the error taxonomy returned to API clients. Every
// failure a handler can produce is one of the kinds below, with a stable code
// the UI switches on. Server errors keep their cause for logging but only a
// generic message is ever written to the client.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error.
type Kind int

const (
	KindServer Kind = iota
	KindNotAllowed
	KindNotAdmin
	KindInvalidField
	KindDuplicate
	KindPasswordMismatch
	KindUnauthorized
	KindInvalidCredentials
	KindUserNotVerified
	KindAlreadyVerified
	KindNotFound
	KindTooManyRequests
)

var codes = map[Kind]string{
	KindNotAllowed:         "CYPU-001",
	KindNotAdmin:           "CYPU-002",
	KindInvalidField:       "CYPU-101",
	KindDuplicate:          "CYPU-102",
	KindPasswordMismatch:   "CYPU-103",
	KindUnauthorized:       "CYPU-201",
	KindInvalidCredentials: "CYPU-202",
	KindUserNotVerified:    "CYPU-203",
	KindAlreadyVerified:    "CYPU-204",
	KindNotFound:           "CYPU-301",
	KindTooManyRequests:    "CYPU-401",
	KindServer:             "CYPU-500",
}

var statuses = map[Kind]int{
	KindNotAllowed:         http.StatusForbidden,
	KindNotAdmin:           http.StatusForbidden,
	KindInvalidField:       http.StatusBadRequest,
	KindDuplicate:          http.StatusBadRequest,
	KindPasswordMismatch:   http.StatusBadRequest,
	KindUnauthorized:       http.StatusUnauthorized,
	KindInvalidCredentials: http.StatusUnauthorized,
	KindUserNotVerified:    http.StatusUnauthorized,
	KindAlreadyVerified:    http.StatusMethodNotAllowed,
	KindNotFound:           http.StatusNotFound,
	KindTooManyRequests:    http.StatusTooManyRequests,
	KindServer:             http.StatusInternalServerError,
}

// Error is the single error type rendered by the HTTP layer.
type Error struct {
	Kind    Kind
	Message string
	// Field names the offending request field for InvalidField and Duplicate.
	Field string
	// Entity names the missing entity type for NotFound.
	Entity string
	// Sent is reported back when a mail could not be dispatched.
	Sent  string
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// Code returns the stable CYPU-xxx code of the error.
func (e *Error) Code() string { return codes[e.Kind] }

// Status returns the HTTP status the error maps to.
func (e *Error) Status() int { return statuses[e.Kind] }

// WithSent marks the error with the mail dispatch outcome.
func (e *Error) WithSent(sent string) *Error {
	e.Sent = sent
	return e
}

// Response is the JSON envelope written for every failed request.
type Response struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Sent    string `json:"sent,omitempty"`
}

// Response builds the client-facing envelope.
func (e *Error) Response() Response {
	return Response{Message: e.Message, Code: e.Code(), Sent: e.Sent}
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == kind
}

// FromStatus maps a bare HTTP status, such as echo's own route errors, onto
// the closest kind.
func FromStatus(status int, message string) *Error {
	kind := KindServer
	switch status {
	case http.StatusBadRequest, http.StatusUnsupportedMediaType, http.StatusRequestEntityTooLarge:
		kind = KindInvalidField
	case http.StatusUnauthorized:
		kind = KindUnauthorized
	case http.StatusForbidden:
		kind = KindNotAllowed
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		kind = KindNotFound
	case http.StatusTooManyRequests:
		kind = KindTooManyRequests
	}
	if message == "" {
		message = http.StatusText(status)
	}
	return &Error{Kind: kind, Message: message}
}

// From converts any error into an *Error; unknown errors become server errors.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return ServerError(err)
}

func NotAllowed() *Error {
	return &Error{Kind: KindNotAllowed, Message: "You are not allowed to do this"}
}

func NotAdmin() *Error {
	return &Error{Kind: KindNotAdmin, Message: "Admin role required"}
}

func InvalidField(field string) *Error {
	return &Error{Kind: KindInvalidField, Field: field, Message: fmt.Sprintf("Invalid field: %s", field)}
}

func Duplicate(field string) *Error {
	return &Error{Kind: KindDuplicate, Field: field, Message: fmt.Sprintf("Duplicate value for field: %s", field)}
}

func PasswordMismatch() *Error {
	return &Error{Kind: KindPasswordMismatch, Field: "confirmPass", Message: "Passwords do not match"}
}

func Unauthorized() *Error {
	return &Error{Kind: KindUnauthorized, Message: "Unauthorized"}
}

func InvalidCredentials() *Error {
	return &Error{Kind: KindInvalidCredentials, Message: "Invalid credentials"}
}

func UserNotVerified() *Error {
	return &Error{Kind: KindUserNotVerified, Message: "User not verified"}
}

func AlreadyVerified() *Error {
	return &Error{Kind: KindAlreadyVerified, Message: "User already verified"}
}

// NotFound reports a missing entity of the named type.
func NotFound(entity string) *Error {
	return &Error{Kind: KindNotFound, Entity: entity, Message: fmt.Sprintf("%s not found", entity)}
}

func TooManyRequests() *Error {
	return &Error{Kind: KindTooManyRequests, Message: "Too many requests"}
}

// ServerError wraps an unexpected failure. The cause is kept for logs only.
func ServerError(cause error) *Error {
	return &Error{Kind: KindServer, Message: "Server error", cause: cause}
}
