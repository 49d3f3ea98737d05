package minigrep_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/minigrep"
	"github.com/stretchr/testify/assert"
)

func TestFormatNumbers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		numbers []int
		want    string
	}{
		{name: "empty", numbers: nil, want: "[]"},
		{name: "single", numbers: []int{1}, want: "[1]"},
		{name: "several", numbers: []int{1, 2, 10}, want: "[1, 2, 10]"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, minigrep.FormatNumbers(tt.numbers))
		})
	}
}

func TestFormatMatchIndex(t *testing.T) {
	t.Parallel()

	t.Run("formats one row per entry in line order", func(t *testing.T) {
		t.Parallel()

		m := minigrep.MatchIndex{
			"Pick three.":             {2},
			"safe, fast, productive.": {1, 3},
		}

		result := minigrep.FormatMatchIndex(m, minigrep.Style{})

		expected := "safe, fast, productive.: [1, 3]\nPick three.: [2]\n"
		assert.Equal(t, expected, result)
	})

	t.Run("returns empty string for empty index", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, minigrep.FormatMatchIndex(minigrep.MatchIndex{}, minigrep.Style{}))
	})

	t.Run("applies numbers style", func(t *testing.T) {
		t.Parallel()

		style := minigrep.Style{
			Numbers: func(a ...any) string { return "<" + fmt.Sprint(a...) + ">" },
		}

		result := minigrep.FormatMatchIndex(minigrep.MatchIndex{"x": {1}}, style)

		assert.Equal(t, "x: <[1]>\n", result)
	})
}

func TestFormatDirectoryResult(t *testing.T) {
	t.Parallel()

	t.Run("formats header per file ordered by path", func(t *testing.T) {
		t.Parallel()

		r := minigrep.DirectoryResult{
			"docs/b.txt": {"productive b": {4}},
			"docs/a.txt": {"productive a": {1, 2}},
		}

		result := minigrep.FormatDirectoryResult(r, minigrep.Style{})

		expected := "docs/a.txt:\nproductive a: [1, 2]\ndocs/b.txt:\nproductive b: [4]\n"
		assert.Equal(t, expected, result)
	})

	t.Run("applies path style to headers", func(t *testing.T) {
		t.Parallel()

		style := minigrep.Style{
			Path: func(a ...any) string { return "*" + fmt.Sprint(a...) + "*" },
		}

		result := minigrep.FormatDirectoryResult(minigrep.DirectoryResult{"a.txt": {"x": {1}}}, style)

		assert.Equal(t, "*a.txt:*\nx: [1]\n", result)
	})

	t.Run("returns empty string for empty result", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, minigrep.FormatDirectoryResult(nil, minigrep.Style{}))
	})
}
