// Package apperr holds the error classes shared by the catalog, client and
// command packages. Callers wrap a class with a reason using
// fmt.Errorf("%w: reason", class) and classify with errors.Is.
package apperr

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned when a client id or publication key has no match.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when an insert hits an existing key.
	ErrDuplicate = errors.New("duplicate")

	// ErrInvalidInput is returned for malformed descriptors and unsupported
	// field values.
	ErrInvalidInput = errors.New("invalid input")

	// ErrPreconditionFailed is returned when a checkout finds no copies left.
	ErrPreconditionFailed = errors.New("precondition failed")
)

var codes = []struct {
	err  error
	code string
}{
	{ErrNotFound, "NOT_FOUND"},
	{ErrDuplicate, "DUPLICATE"},
	{ErrInvalidInput, "INVALID_INPUT"},
	{ErrPreconditionFailed, "PRECONDITION_FAILED"},
}

// Code returns the short code of the class err belongs to, or
// "INTERNAL_ERROR" when it belongs to none.
func Code(err error) string {
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return "INTERNAL_ERROR"
}

// Reason returns the message of err without the leading class name.
func Reason(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, c := range codes {
		if rest, ok := strings.CutPrefix(msg, c.err.Error()+": "); ok {
			return rest
		}
	}
	return msg
}
