// Package cli provides shared configuration and utilities for the spesengine CLI.
package cli

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes reported by the binary. Wrapper scripts key off these to tell a
// misconfigured invocation apart from bad snapshot data or an unreachable
// database.
const (
	ExitSuccess       = 0
	ExitGeneral       = 1
	ExitConfig        = 2
	ExitSnapshotParse = 3
	ExitDBConnect     = 4
)

// ExitError carries the exit code a command failure should terminate with.
// Commands return it through cobra; Execute unwraps it at the top level so
// RunE bodies never call os.Exit themselves.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitWithError prints err to stderr and terminates the process. The exit
// code comes from the ExitError in the chain when there is one; anything else
// exits with the general code.
func ExitWithError(err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		fmt.Fprintln(os.Stderr, "Error:", exitErr.Error())
		os.Exit(exitErr.Code)
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(ExitGeneral)
}

// ConfigError marks a failure in loading or validating configuration.
func ConfigError(msg string, err error) *ExitError {
	return &ExitError{Code: ExitConfig, Message: msg, Err: err}
}

// SnapshotParseError marks an unreadable or malformed snapshot file.
func SnapshotParseError(msg string, err error) *ExitError {
	return &ExitError{Code: ExitSnapshotParse, Message: msg, Err: err}
}

// DBConnectError marks a failure reaching or reading the catalog database.
func DBConnectError(msg string, err error) *ExitError {
	return &ExitError{Code: ExitDBConnect, Message: msg, Err: err}
}

// GeneralError marks any other command failure.
func GeneralError(msg string, err error) *ExitError {
	return &ExitError{Code: ExitGeneral, Message: msg, Err: err}
}
