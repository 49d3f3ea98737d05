package text_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/minigrep/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func TestIsBinary(t *testing.T) {
	t.Parallel()

	t.Run("detects image signature", func(t *testing.T) {
		t.Parallel()

		assert.True(t, text.IsBinary(pngHeader))
	})

	t.Run("detects archive signature", func(t *testing.T) {
		t.Parallel()

		assert.True(t, text.IsBinary([]byte{0x1f, 0x8b, 0x08, 0, 0, 0, 0, 0}))
	})

	t.Run("plain text is not binary", func(t *testing.T) {
		t.Parallel()

		assert.False(t, text.IsBinary([]byte("safe, fast, productive.\nPick three.\n")))
	})

	t.Run("empty header is not binary", func(t *testing.T) {
		t.Parallel()

		assert.False(t, text.IsBinary(nil))
	})
}

func TestSniffFile(t *testing.T) {
	t.Parallel()

	t.Run("reads short files", func(t *testing.T) {
		t.Parallel()

		// Given a file shorter than the sniffing header
		path := filepath.Join(t.TempDir(), "short.txt")
		require.NoError(t, os.WriteFile(path, []byte("hi\n"), 0644))

		// When I sniff it
		binary, err := text.SniffFile(path)

		// Then it is reported as text
		require.NoError(t, err)
		assert.False(t, binary)
	})

	t.Run("reports binary files", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "image.png")
		require.NoError(t, os.WriteFile(path, pngHeader, 0644))

		binary, err := text.SniffFile(path)

		require.NoError(t, err)
		assert.True(t, binary)
	})

	t.Run("returns error for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := text.SniffFile(filepath.Join(t.TempDir(), "missing"))

		assert.Error(t, err)
	})
}
