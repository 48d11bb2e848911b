package errors

import (
	"errors"
	"fmt"
)

// Code categorizes a failure so callers can branch without string matching
type Code string

const (
	// CodeUnknown is used for errors that did not originate in this module
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument means the caller broke an input contract
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound means the requested item or entity does not exist
	CodeNotFound Code = "not_found"

	// CodeInsufficientQuantity means a stack holds fewer units than requested
	CodeInsufficientQuantity Code = "insufficient_quantity"

	// CodeValidation indicates configuration or input failed validation
	CodeValidation Code = "validation"
)

// Error is the module's error type: a code, a message, an optional cause and metadata
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta attaches a key/value pair and returns the same error for chaining
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates an error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates an error with a formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap adds context to err. A wrapped *Error keeps its code and metadata.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var rpgErr *Error
	if errors.As(err, &rpgErr) {
		return &Error{
			Code:    rpgErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(rpgErr.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// WrapWithCode wraps err and overrides its code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

// NotFoundf creates a formatted not found error
func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// InsufficientQuantityf creates a formatted insufficient quantity error
func InsufficientQuantityf(format string, args ...any) *Error {
	return Newf(CodeInsufficientQuantity, format, args...)
}

// Validationf creates a formatted validation error
func Validationf(format string, args ...any) *Error {
	return Newf(CodeValidation, format, args...)
}

// Is reports whether err, or anything it wraps, is an *Error with the given code
func Is(err error, code Code) bool {
	var rpgErr *Error
	if errors.As(err, &rpgErr) {
		return rpgErr.Code == code
	}
	return false
}

func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

func IsInvalidArgument(err error) bool {
	return Is(err, CodeInvalidArgument)
}

func IsInsufficientQuantity(err error) bool {
	return Is(err, CodeInsufficientQuantity)
}

func IsValidation(err error) bool {
	return Is(err, CodeValidation)
}

// GetCode returns the code of the outermost *Error, or CodeUnknown
func GetCode(err error) Code {
	var rpgErr *Error
	if errors.As(err, &rpgErr) {
		return rpgErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the metadata of the outermost *Error
func GetMeta(err error) map[string]any {
	var rpgErr *Error
	if errors.As(err, &rpgErr) {
		return rpgErr.Meta
	}
	return nil
}

func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
