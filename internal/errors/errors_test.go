package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindExitCodes(t *testing.T) {
	tests := []struct {
		kind Kind
		code int
		name string
	}{
		{KindNoInput, 1, "NoInput"},
		{KindInvalidAddress, 2, "InvalidAddress"},
		{KindConfiguration, 1, "ConfigurationError"},
		{KindStoreOpen, 1, "StoreOpenError"},
		{KindNotRetrievable, 1, "NotRetrievable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.kind.ExitCode())
			assert.Equal(t, tt.name, tt.kind.String())
		})
	}

	assert.Equal(t, "Kind(42)", Kind(42).String())
}

func TestResolutionErrorMessage(t *testing.T) {
	cause := errors.New("invalid credentials")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"no input", NoInput(), "no variable was provided"},
		{"store open passes cause through", StoreOpen(cause), "invalid credentials"},
		{"not retrievable", NotRetrievable(errors.New("x could not be retrieved")), "x could not be retrieved"},
		{"configuration message", Configuration("Configuration error: missing"), "Configuration error: missing"},
		{"bare kind", ResolutionError{Kind: KindStoreOpen}, "StoreOpenError"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestResolutionErrorUnwrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := StoreOpen(cause)

	assert.True(t, errors.Is(err, cause))

	wrapped := fmt.Errorf("summon: %w", err)
	kind, ok := KindOf(wrapped)
	assert.True(t, ok)
	assert.Equal(t, KindStoreOpen, kind)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(NoInput()))
	assert.Equal(t, 2, ExitCode(InvalidAddress(errors.New("a|b|c is no valid secret path"))))
	assert.Equal(t, 1, ExitCode(errors.New("unexpected")))
	assert.Equal(t, 2, ExitCode(fmt.Errorf("wrapped: %w", InvalidAddress(nil))))
}

func TestKindOf_NotResolutionError(t *testing.T) {
	_, ok := KindOf(errors.New("plain"))
	assert.False(t, ok)
}
