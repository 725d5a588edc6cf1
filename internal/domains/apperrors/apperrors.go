package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an engine error for the caller.
type Kind int

const (
	// KindValidation marks malformed input. Never retried.
	KindValidation Kind = iota
	// KindStateConflict marks an action rejected by the current match or
	// round state. The caller is expected to refresh and retry with
	// corrected intent.
	KindStateConflict
	// KindNotFound marks an unknown match, round or user. Terminal.
	KindNotFound
)

type Error struct {
	Kind   Kind
	Status int
	Msg    string
}

func (e *Error) Error() string {
	return e.Msg
}

func Validationf(format string, args ...interface{}) *Error {
	return &Error{
		Kind:   KindValidation,
		Status: http.StatusBadRequest,
		Msg:    fmt.Sprintf(format, args...),
	}
}

func Conflictf(format string, args ...interface{}) *Error {
	return &Error{
		Kind:   KindStateConflict,
		Status: http.StatusConflict,
		Msg:    fmt.Sprintf(format, args...),
	}
}

// WrongTurnf is a state conflict that surfaces as forbidden: the actor
// exists and the match exists, but it is not their move.
func WrongTurnf(format string, args ...interface{}) *Error {
	return &Error{
		Kind:   KindStateConflict,
		Status: http.StatusForbidden,
		Msg:    fmt.Sprintf(format, args...),
	}
}

func NotFoundf(format string, args ...interface{}) *Error {
	return &Error{
		Kind:   KindNotFound,
		Status: http.StatusNotFound,
		Msg:    fmt.Sprintf(format, args...),
	}
}

func KindOf(err error) (Kind, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind, true
	}
	return 0, false
}

func IsValidation(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindValidation
}

func IsStateConflict(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindStateConflict
}

func IsNotFound(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindNotFound
}

// StatusOf maps an error to the HTTP status the lambda surface reports.
// Unclassified errors are treated as internal.
func StatusOf(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return http.StatusInternalServerError
}
