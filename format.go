package minigrep

import (
	"strconv"
	"strings"
)

// Style decorates parts of formatted output. Nil fields leave text unchanged.
// The function signature matches color.Color.SprintFunc.
type Style struct {
	Path    func(a ...any) string
	Numbers func(a ...any) string
}

func (s Style) path(p string) string {
	if s.Path == nil {
		return p
	}
	return s.Path(p)
}

func (s Style) numbers(n string) string {
	if s.Numbers == nil {
		return n
	}
	return s.Numbers(n)
}

// FormatNumbers formats line numbers as a bracketed, comma separated list.
func FormatNumbers(numbers []int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, n := range numbers {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(n))
	}
	b.WriteByte(']')
	return b.String()
}

// FormatMatchIndex formats one "<line text>: [numbers]" row per entry,
// ordered by first occurrence. Each row ends with a newline.
func FormatMatchIndex(m MatchIndex, style Style) string {
	var b strings.Builder
	for _, line := range m.Lines() {
		b.WriteString(line.Text)
		b.WriteString(": ")
		b.WriteString(style.numbers(FormatNumbers(line.Numbers)))
		b.WriteByte('\n')
	}
	return b.String()
}

// FormatDirectoryResult formats a "<path>:" header per file followed by the
// file's rows as produced by FormatMatchIndex. Files are ordered by path.
func FormatDirectoryResult(r DirectoryResult, style Style) string {
	var b strings.Builder
	for _, path := range r.Paths() {
		b.WriteString(style.path(path + ":"))
		b.WriteByte('\n')
		b.WriteString(FormatMatchIndex(r[path], style))
	}
	return b.String()
}
