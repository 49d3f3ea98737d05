package minigrep

import (
	"context"
	"sort"
)

// MatchIndex maps the text of a matching line to every line number
// (1-based, in order of appearance) at which that exact text occurs.
type MatchIndex map[string][]int

// Add records that text occurs at line number n.
// Callers add numbers in increasing order.
func (m MatchIndex) Add(text string, n int) {
	m[text] = append(m[text], n)
}

// Count returns the total number of matching lines, counting repeats.
func (m MatchIndex) Count() int {
	var n int
	for _, numbers := range m {
		n += len(numbers)
	}
	return n
}

// Line is a single MatchIndex entry.
type Line struct {
	Text    string
	Numbers []int
}

// Lines returns the entries of the index ordered by first occurrence.
func (m MatchIndex) Lines() []Line {
	lines := make([]Line, 0, len(m))
	for text, numbers := range m {
		lines = append(lines, Line{Text: text, Numbers: numbers})
	}
	sort.Slice(lines, func(i, j int) bool {
		a, b := lines[i].first(), lines[j].first()
		if a != b {
			return a < b
		}
		return lines[i].Text < lines[j].Text
	})
	return lines
}

func (l Line) first() int {
	if len(l.Numbers) == 0 {
		return 0
	}
	return l.Numbers[0]
}

// DirectoryResult maps a file path to the MatchIndex of that file.
// Only files with at least one match are present.
type DirectoryResult map[string]MatchIndex

// Paths returns the file paths of the result in lexical order.
func (r DirectoryResult) Paths() []string {
	paths := make([]string, 0, len(r))
	for path := range r {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// FileSearcher searches a single file for lines containing a substring.
type FileSearcher interface {
	// SearchFile scans the file at path line by line and returns every line
	// containing needle, keyed by line text.
	// Returns ENOTFOUND if the file does not exist and EIO if it cannot be
	// opened or read. A file with no matching lines yields an empty index.
	SearchFile(ctx context.Context, path, needle string) (MatchIndex, error)
}

// DirectorySearcher searches the regular files directly inside a directory.
// Subdirectories are never descended into.
type DirectorySearcher interface {
	// SearchDirectory runs a file search on every regular file in the
	// directory at path and returns the non-empty results keyed by file path.
	// Returns ENOTFOUND if the directory does not exist and EIO if it cannot
	// be listed.
	SearchDirectory(ctx context.Context, path, needle string) (DirectoryResult, error)
}
