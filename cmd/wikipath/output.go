package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// outputJSON writes a value as formatted JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputHuman writes a human-readable line.
func outputHuman(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, format, args...)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// exitError carries a process exit code through cobra's RunE chain.
// A silent exitError has already reported itself.
type exitError struct {
	code   int
	err    error
	silent bool
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

// exitWith wraps err with an exit code.
func exitWith(code int, format string, args ...interface{}) error {
	return &exitError{code: code, err: fmt.Errorf(format, args...)}
}

// exitSilently ends the command with code and no further message.
func exitSilently(code int) error {
	return &exitError{code: code, silent: true}
}

// reportError prints err in the selected format and returns its exit code.
func reportError(stdout, stderr io.Writer, human bool, err error) int {
	code := ExitError
	var ee *exitError
	if errors.As(err, &ee) {
		code = ee.code
		if ee.silent {
			return code
		}
	}

	if human {
		fmt.Fprintf(stderr, "error: %v\n", err)
	} else {
		outputJSON(stdout, ErrorResponse{Error: err.Error()})
	}
	return code
}
