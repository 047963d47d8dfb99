// Package apperr holds the error kinds shared by the domain packages and their mapping to HTTP statuses.
package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Varshini0817/Ject/pkg"
)

var (
	ErrValidation       = errors.New("validation failed")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Error carries a client facing message and the kind it belongs to.
type Error struct {
	kind error
	msg  string
}

func New(kind error, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.kind
}

func Validation(format string, args ...any) error {
	return New(ErrValidation, fmt.Sprintf(format, args...))
}

// FromStore marks connection level store failures as ErrStoreUnavailable and returns other errors as they are.
func FromStore(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrStoreUnavailable) {
		return err
	}
	if pkg.IsConnectionError(err) {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return err
}

func Status(err error) int {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrConflict):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Message is what the client gets to see. Internal errors are not leaked.
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.msg
	}
	switch Status(err) {
	case http.StatusServiceUnavailable:
		return "storage unavailable, try again later"
	default:
		return "internal server error"
	}
}

// Write sends err as a JSON error body with the matching status.
func Write(w http.ResponseWriter, err error) {
	pkg.WriteError(w, Message(err), Status(err))
}
