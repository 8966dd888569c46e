package output

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCodeConstants(t *testing.T) {
	assert.Equal(t, 0, ExitSuccess)
	assert.Equal(t, 1, ExitUserError)
	assert.Equal(t, 2, ExitSystemError)
	assert.Equal(t, 3, ExitCheckFailed)
}

func TestExitError(t *testing.T) {
	tests := []struct {
		name        string
		err         *ExitError
		wantCode    int
		wantMessage string
	}{
		{
			name:        "user error",
			err:         NewUserError("invalid --color value \"pink\""),
			wantCode:    ExitUserError,
			wantMessage: "invalid --color value \"pink\"",
		},
		{
			name:        "system error",
			err:         NewSystemErrorWithCause("reading input", errors.New("EIO")),
			wantCode:    ExitSystemError,
			wantMessage: "reading input",
		},
		{
			name:        "check error",
			err:         NewCheckError("2 lines would change"),
			wantCode:    ExitCheckFailed,
			wantMessage: "2 lines would change",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.wantMessage, tt.err.Message)
			assert.Equal(t, tt.wantMessage, tt.err.Error())
		})
	}
}

func TestExitErrorWrapping(t *testing.T) {
	underlying := errors.New("broken pipe")

	sys := NewSystemErrorWithCause("writing output", underlying)
	assert.Equal(t, ExitSystemError, sys.Code)
	assert.ErrorIs(t, sys, underlying)
	assert.Equal(t, "writing output", sys.Error())

	usr := NewUserErrorWithCause("loading config", underlying)
	assert.Equal(t, ExitUserError, usr.Code)
	assert.ErrorIs(t, usr, underlying)
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error", nil, ExitSuccess},
		{"user", NewUserError("bad input"), ExitUserError},
		{"system", NewSystemErrorWithCause("stdin closed", errors.New("EOF")), ExitSystemError},
		{"check", NewCheckError("unlinked"), ExitCheckFailed},
		{"wrapped", fmt.Errorf("run: %w", NewSystemErrorWithCause("x", errors.New("x"))), ExitSystemError},
		{"regular error defaults to user error", errors.New("some error"), ExitUserError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetExitCode(tt.err))
		})
	}
}
