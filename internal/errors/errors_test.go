package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesCodeAndMeta(t *testing.T) {
	base := NotFoundf("item %q not in inventory", "Rope").WithMeta("item", "Rope")

	wrapped := Wrap(base, "remove failed")
	require.NotNil(t, wrapped)

	assert.Equal(t, CodeNotFound, wrapped.Code)
	assert.True(t, IsNotFound(wrapped))
	assert.Equal(t, "Rope", GetMeta(wrapped)["item"])
	assert.Equal(t, `remove failed: item "Rope" not in inventory`, wrapped.Error())

	// meta is copied, not shared
	wrapped.WithMeta("extra", 1)
	_, leaked := base.Meta["extra"]
	assert.False(t, leaked)
}

func TestWrapForeignError(t *testing.T) {
	cause := errors.New("boom")

	wrapped := Wrap(cause, "loading config")

	assert.Equal(t, CodeUnknown, GetCode(wrapped))
	assert.ErrorIs(t, wrapped, cause)
	assert.Equal(t, "loading config: boom", wrapped.Error())
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "nothing"))
	assert.Nil(t, WrapWithCode(nil, CodeValidation, "nothing"))
}

func TestWrapWithCode(t *testing.T) {
	err := WrapWithCode(InvalidArgument("bad attribute"), CodeValidation, "config rejected")

	assert.True(t, IsValidation(err))
	assert.False(t, IsInvalidArgument(err))
	// the cause still carries its own code
	assert.True(t, IsInvalidArgument(errors.Unwrap(err)))
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
	}{
		{name: "not found", err: NotFoundf("x %q", "y"), code: CodeNotFound},
		{name: "invalid argument", err: InvalidArgumentf("x %d", 1), code: CodeInvalidArgument},
		{name: "insufficient quantity", err: InsufficientQuantityf("need %d", 5), code: CodeInsufficientQuantity},
		{name: "wrapped", err: Wrap(InsufficientQuantityf("need %d", 5), "remove"), code: CodeInsufficientQuantity},
		{name: "validation", err: Validationf("x"), code: CodeValidation},
		{name: "plain error", err: errors.New("x"), code: CodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, GetCode(tt.err))
			assert.Equal(t, tt.code == CodeInsufficientQuantity, IsInsufficientQuantity(tt.err))
		})
	}
}
