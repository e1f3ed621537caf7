package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCategory classifies the failures that can stop a checksum run.
// All of them are fatal for the invoking process; the category exists
// for logging and for callers that want to tell them apart.
type ErrorCategory int

const (
	// ErrorFileAccess indicates an input, expected-output or config file
	// that is missing or cannot be read.
	ErrorFileAccess ErrorCategory = iota + 1

	// ErrorParse indicates a malformed line in an expected-output file.
	ErrorParse

	// ErrorLookup indicates that the "Hex:" value could not be found in
	// the output of a strategy run.
	ErrorLookup

	// ErrorExec indicates that the checksum binary could not be started
	// or exited abnormally.
	ErrorExec

	// ErrorCompression indicates a corrupt compressed input.
	ErrorCompression

	// ErrorMismatch indicates a strategy produced a checksum other than
	// the expected one.
	ErrorMismatch
)

// String returns the string representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case ErrorFileAccess:
		return "file_access"
	case ErrorParse:
		return "parse"
	case ErrorLookup:
		return "lookup"
	case ErrorExec:
		return "exec"
	case ErrorCompression:
		return "compression"
	case ErrorMismatch:
		return "mismatch"
	default:
		return "unknown"
	}
}

type ChecksumError struct {
	Err       error
	Path      string
	Operation string
	Timestamp time.Time
	Category  ErrorCategory
}

func (e *ChecksumError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("[%v] %s %s: %v", e.Category, e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("[%v] %s: %v", e.Category, e.Operation, e.Err)
}

func (e *ChecksumError) Unwrap() error {
	return e.Err
}

func newError(category ErrorCategory, op, path string, err error) *ChecksumError {
	return &ChecksumError{
		Err:       err,
		Path:      path,
		Operation: op,
		Category:  category,
		Timestamp: time.Now(),
	}
}

// NewFileAccessError reports a file that could not be opened or read.
func NewFileAccessError(op, path string, err error) *ChecksumError {
	return newError(ErrorFileAccess, op, path, err)
}

// NewParseError reports a malformed line; line numbers start at 1.
func NewParseError(path string, line int, err error) *ChecksumError {
	return newError(ErrorParse, fmt.Sprintf("parse line %d", line), path, err)
}

func NewLookupError(op, path string, err error) *ChecksumError {
	return newError(ErrorLookup, op, path, err)
}

func NewExecError(op, path string, err error) *ChecksumError {
	return newError(ErrorExec, op, path, err)
}

func NewCompressionError(op, path string, err error) *ChecksumError {
	return newError(ErrorCompression, op, path, err)
}

func NewMismatchError(path, strategy string, want, got uint16) *ChecksumError {
	return newError(
		ErrorMismatch, "compare "+strategy, path, fmt.Errorf("expected %X, got %X", want, got),
	)
}

// IsCategory reports whether any error in err's chain is a ChecksumError of
// the given category.
func IsCategory(err error, category ErrorCategory) bool {
	var ce *ChecksumError
	if errors.As(err, &ce) {
		return ce.Category == category
	}
	return false
}

// AsChecksumError attempts to extract a ChecksumError from err.
func AsChecksumError(err error) *ChecksumError {
	var ce *ChecksumError
	if errors.As(err, &ce) {
		return ce
	}
	return nil
}
