package minigrep_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/fwojciec/minigrep"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := minigrep.Errorf(minigrep.ENOTFOUND, "file %q not found", "test.txt")

	assert.Equal(t, minigrep.ENOTFOUND, minigrep.ErrorCode(err))
	assert.Equal(t, "file \"test.txt\" not found", minigrep.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, minigrep.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, minigrep.ErrorMessage(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, minigrep.EINTERNAL, minigrep.ErrorCode(err))
	assert.Equal(t, "Internal error.", minigrep.ErrorMessage(err))
}

func TestError_Wrapped(t *testing.T) {
	t.Parallel()

	t.Run("code survives fmt wrapping", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("search: %w", minigrep.Errorf(minigrep.EIO, "read failed"))

		assert.Equal(t, minigrep.EIO, minigrep.ErrorCode(err))
		assert.Equal(t, "read failed", minigrep.ErrorMessage(err))
	})

	t.Run("unwraps to underlying cause", func(t *testing.T) {
		t.Parallel()

		err := &minigrep.Error{Code: minigrep.ENOTFOUND, Message: "missing", Err: fs.ErrNotExist}

		assert.ErrorIs(t, err, fs.ErrNotExist)
		assert.Contains(t, err.Error(), "code=not_found")
	})
}
