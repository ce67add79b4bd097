package models

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies every failure the API reports to clients.
type ErrorKind int

const (
	// KindInternal is an unrecognized failure. It is logged and never described to clients.
	KindInternal ErrorKind = iota
	// KindNotFound means the addressed entity does not exist.
	KindNotFound
	// KindInvalidInput means an id or query parameter has the wrong type.
	KindInvalidInput
	// KindBadRequest means a required field is missing or a reference dangles.
	KindBadRequest
	// KindConflict means a uniqueness rule was violated.
	KindConflict
	// KindUnauthenticated means the credential is missing, invalid or incorrect.
	KindUnauthenticated
	// KindForbidden means the caller is authenticated but not permitted.
	KindForbidden
	// KindRouteNotFound means no endpoint matches the request.
	KindRouteNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInvalidInput:
		return "invalid_input"
	case KindBadRequest:
		return "bad_request"
	case KindConflict:
		return "conflict"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindForbidden:
		return "forbidden"
	case KindRouteNotFound:
		return "route_not_found"
	default:
		return "internal"
	}
}

// Canonical client-facing messages.
const (
	MsgIDNotFound        = "id not found"
	MsgCategoryNotFound  = "category not found"
	MsgUsernameNotFound  = "username not found"
	MsgInvalidDataType   = "invalid data type"
	MsgBadRequest        = "bad request"
	MsgKeyExists         = "key already exists"
	MsgLoginRequired     = "login required"
	MsgInvalidToken      = "invalid token"
	MsgBadCredentials    = "username or password is incorrect"
	MsgForbidden         = "forbidden"
	MsgPathNotFound      = "path not found"
	MsgInternalServerErr = "internal server error"
)

// ErrorResponse is the JSON body of every rejected request.
type ErrorResponse struct {
	Message string `json:"message"`
}

// AppError is a typed rejection carrying the HTTP status and message shown to the client.
type AppError struct {
	Kind    ErrorKind
	Status  int
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

// Is matches AppErrors by kind and message so sentinel values work with errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Status == t.Status && e.Message == t.Message
}

// StatusFor returns the default HTTP status for a kind.
func StatusFor(kind ErrorKind) int {
	switch kind {
	case KindNotFound, KindRouteNotFound:
		return http.StatusNotFound
	case KindInvalidInput, KindBadRequest, KindConflict:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// KindForStatus maps a status back to the kind that owns it.
func KindForStatus(status int) ErrorKind {
	switch status {
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusBadRequest:
		return KindBadRequest
	case http.StatusUnauthorized:
		return KindUnauthenticated
	case http.StatusForbidden:
		return KindForbidden
	default:
		return KindInternal
	}
}

func newError(kind ErrorKind, message string) *AppError {
	return &AppError{Kind: kind, Status: StatusFor(kind), Message: message}
}

// Predefined error constructors
func NewNotFoundError(message string) *AppError {
	return newError(KindNotFound, message)
}

func NewInvalidInputError() *AppError {
	return newError(KindInvalidInput, MsgInvalidDataType)
}

func NewBadRequestError() *AppError {
	return newError(KindBadRequest, MsgBadRequest)
}

func NewConflictError() *AppError {
	return newError(KindConflict, MsgKeyExists)
}

// NewLoginRequiredError is returned when no credential was presented at all.
func NewLoginRequiredError() *AppError {
	return &AppError{Kind: KindUnauthenticated, Status: http.StatusForbidden, Message: MsgLoginRequired}
}

func NewInvalidTokenError(err error) *AppError {
	return &AppError{Kind: KindUnauthenticated, Status: http.StatusUnauthorized, Message: MsgInvalidToken, Err: err}
}

func NewBadCredentialsError() *AppError {
	return newError(KindUnauthenticated, MsgBadCredentials)
}

func NewForbiddenError() *AppError {
	return newError(KindForbidden, MsgForbidden)
}

func NewRouteNotFoundError() *AppError {
	return newError(KindRouteNotFound, MsgPathNotFound)
}

func NewInternalError(err error) *AppError {
	return &AppError{Kind: KindInternal, Status: http.StatusInternalServerError, Message: MsgInternalServerErr, Err: err}
}

// NewStatusError builds an AppError for an explicit status, deriving its kind.
func NewStatusError(status int, message string) *AppError {
	return &AppError{Kind: KindForStatus(status), Status: status, Message: message}
}

// AsAppError unwraps err into an AppError if it is one.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Kind == kind
}
