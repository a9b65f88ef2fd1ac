package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess    = 0 // Report printed
	ExitInputError = 1 // Samples could not be read or summarized
	ExitError      = 2 // Configuration or runtime error
)

// InputError indicates that the input data itself was unusable: a line
// failed to parse, a value was not finite, or there were no samples.
type InputError struct {
	Err error
}

func (e *InputError) Error() string {
	return e.Err.Error()
}

func (e *InputError) Unwrap() error {
	return e.Err
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var inputErr *InputError
	if errors.As(err, &inputErr) {
		return ExitInputError
	}
	return ExitError
}
