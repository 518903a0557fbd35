package xerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	errFirst  = errors.New("first")
	errSecond = errors.New("second")
)

type codeError struct {
	code int
}

func (e *codeError) Error() string {
	return fmt.Sprintf("code %d", e.code)
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", errSecond)
	require.True(t, Is(err, errFirst, errSecond))
	require.False(t, Is(err, errFirst))
	require.Panics(t, func() {
		_ = Is(err)
	})
}

func TestAs(t *testing.T) {
	var target *codeError
	require.False(t, As(nil, &target))
	require.True(t, As(WithStackTrace(&codeError{code: 42}), &target))
	require.Equal(t, 42, target.code)
}

func TestErrIf(t *testing.T) {
	require.NoError(t, ErrIf(false, errFirst))
	require.ErrorIs(t, ErrIf(true, errFirst), errFirst)
}

func TestJoin(t *testing.T) {
	t.Run("Nil", func(t *testing.T) {
		require.NoError(t, Join(nil, nil))
	})
	t.Run("Single", func(t *testing.T) {
		require.Equal(t, errFirst, Join(nil, errFirst))
	})
	t.Run("Many", func(t *testing.T) {
		err := Join(errFirst, nil, errSecond)
		require.Equal(t, `["first","second"]`, err.Error())
		require.ErrorIs(t, err, errFirst)
		require.ErrorIs(t, err, errSecond)
	})
}
