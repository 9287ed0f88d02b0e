// Package errors defines the exit-code conventions of the mcpmatrix CLI.
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Exit codes for the CLI.
const (
	ExitSuccess = 0

	// ExitUser indicates a user-related error (invalid input, configuration, lint findings).
	ExitUser = 1

	// ExitSystem indicates a system-related error (I/O, network, database).
	ExitSystem = 2
)

// Sentinel errors for common failure conditions.
var (
	// ErrNoData indicates the load produced no usable documents at all.
	ErrNoData = errors.New("no data loaded")

	// ErrLintFailed indicates lint reported warnings in strict mode.
	ErrLintFailed = errors.New("lint reported problems")

	// ErrUnknownFeature indicates a lookup named a feature that is not loaded.
	ErrUnknownFeature = errors.New("unknown feature")
)

// ExitError wraps an error with an exit code and optional suggestion.
type ExitError struct {
	Err        error
	Code       int
	Suggestion string
}

// NewExitError creates an ExitError with the given underlying error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// NewUserError creates an ExitError with ExitUser code and a suggestion.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: ExitUser, Suggestion: suggestion}
}

// NewSystemError creates an ExitError with ExitSystem code and a suggestion.
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: ExitSystem, Suggestion: suggestion}
}

// NewConfigError creates an ExitError for a configuration problem.
func NewConfigError(err error) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: "Run: mcpmatrix init",
	}
}

// Error returns the message of the underlying error, or a generic message
// with the exit code when there is none.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// Code returns the exit code for err: the code of the first ExitError in its
// chain, ExitSuccess for nil, and ExitSystem otherwise.
func Code(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitSystem
}

// Suggestion returns the suggestion of the first ExitError in err's chain.
func Suggestion(err error) string {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Suggestion
	}
	return ""
}
