package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputError(t *testing.T) {
	inner := errors.New("could not parse \"abc\" as a number (line 1)")
	err := &InputError{Err: inner}

	assert.Equal(t, inner.Error(), err.Error())
	assert.ErrorIs(t, err, inner)
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "success",
			err:  nil,
			want: ExitSuccess,
		},
		{
			name: "InputError",
			err:  &InputError{Err: errors.New("no samples")},
			want: ExitInputError,
		},
		{
			name: "wrapped InputError",
			err:  fmt.Errorf("summary: %w", &InputError{Err: errors.New("no samples")}),
			want: ExitInputError,
		},
		{
			name: "regular error",
			err:  errors.New("config error"),
			want: ExitError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}
