// Package errs defines the failure taxonomy shared by every pipeline stage.
//
// Stages return *Error values tagged with a Kind so callers and tests can tell
// failures apart, while the command line boundary collapses them into a single
// reported message.
package errs

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind string

const (
	KindArgument          Kind = "ArgumentError"
	KindDataFormat        Kind = "DataFormatError"
	KindNumericDegeneracy Kind = "NumericDegeneracyError"
	KindModelFit          Kind = "ModelFitError"
	KindIO                Kind = "IOError"
	KindConfig            Kind = "ConfigError"
)

// Error is a classified failure raised by one pipeline operation.
type Error struct {
	Kind    Kind
	Op      string // operation that failed, e.g. "load" or "fit"
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	prefix := string(e.Kind)
	if e.Op != "" {
		prefix = e.Op + ": " + prefix
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

// Unwrap allows errors.Is and errors.As to reach the cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a classified error.
func New(kind Kind, op, message string, cause error) *Error {
	return &Error{Kind: kind, Op: op, Message: message, Cause: cause}
}

// Argument reports a command line usage error.
func Argument(op, message string) *Error {
	return New(KindArgument, op, message, nil)
}

// DataFormat reports malformed input data.
func DataFormat(op, message string, cause error) *Error {
	return New(KindDataFormat, op, message, cause)
}

// NumericDegeneracy reports data the numerics cannot handle, such as zero variance.
func NumericDegeneracy(op, message string) *Error {
	return New(KindNumericDegeneracy, op, message, nil)
}

// ModelFit reports a failure while estimating or using the model.
func ModelFit(op, message string, cause error) *Error {
	return New(KindModelFit, op, message, cause)
}

// IO reports a file system failure.
func IO(op, message string, cause error) *Error {
	return New(KindIO, op, message, cause)
}

// Config reports an invalid configuration.
func Config(op, message string, cause error) *Error {
	return New(KindConfig, op, message, cause)
}

// KindOf returns the kind of the first *Error in err's chain, or "" if there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
