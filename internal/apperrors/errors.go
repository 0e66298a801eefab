package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrParse indicates that a currency source list could not be parsed.
var ErrParse = errors.New("source list parse error")

// ErrUnitsUnavailable indicates that units support was requested but no unit registry is enabled.
var ErrUnitsUnavailable = errors.New("units support requires a unit registry; enable it with UNITS_ENABLED=true")

// ErrDimensionality indicates a conversion between units of different dimensions.
var ErrDimensionality = errors.New("cannot convert between units of different dimensions")

// ParseError describes the offending entry of a source list.
type ParseError struct {
	List  string // "list-one" or "list-three"
	Entry int    // zero-based index of the entry in its table, -1 for document level errors
	Code  string // currency code of the entry, if it could be read
	Field string // XML element or attribute name
	Err   error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString(e.List)
	if e.Entry >= 0 {
		fmt.Fprintf(&b, " entry %d", e.Entry)
	}
	if e.Code != "" {
		fmt.Fprintf(&b, " (%s)", e.Code)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, " field %s", e.Field)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is makes every ParseError match ErrParse.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// AppError carries an HTTP status code alongside a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }
