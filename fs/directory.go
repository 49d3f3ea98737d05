package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/minigrep"
	"github.com/fwojciec/minigrep/text"
)

// Ensure DirectorySearcher implements minigrep.DirectorySearcher at compile time.
var _ minigrep.DirectorySearcher = (*DirectorySearcher)(nil)

// ErrorHandler decides what happens when one file of a directory search
// fails. Returning nil skips the file; returning an error aborts the search
// with that error.
type ErrorHandler func(path string, err error) error

// DirectorySearcher implements minigrep.DirectorySearcher over the direct
// children of a directory. Subdirectories are never descended into.
type DirectorySearcher struct {
	// Files searches each regular file.
	Files minigrep.FileSearcher

	// OnError handles per-file failures. When nil the first failure aborts
	// the whole search and no partial result is returned.
	OnError ErrorHandler

	// SkipBinary skips files whose header is a known binary format.
	SkipBinary bool
}

// NewDirectorySearcher creates a new DirectorySearcher that delegates each
// file to files.
func NewDirectorySearcher(files minigrep.FileSearcher) *DirectorySearcher {
	return &DirectorySearcher{Files: files}
}

// SearchDirectory searches every regular file directly inside path.
// Results are keyed by the joined directory and entry name; files without
// matches are omitted.
func (s *DirectorySearcher) SearchDirectory(ctx context.Context, path, needle string) (minigrep.DirectoryResult, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, ioError(err)
	}

	result := make(minigrep.DirectoryResult)
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		filePath := filepath.Join(path, entry.Name())
		if !isRegularFile(filePath, entry) {
			continue
		}

		if s.SkipBinary {
			binary, err := text.SniffFile(filePath)
			if err != nil {
				if err := s.handle(filePath, ioError(err)); err != nil {
					return nil, err
				}
				continue
			}
			if binary {
				continue
			}
		}

		matches, err := s.Files.SearchFile(ctx, filePath, needle)
		if err != nil {
			if err := s.handle(filePath, err); err != nil {
				return nil, err
			}
			continue
		}

		if len(matches) > 0 {
			result[filePath] = matches
		}
	}

	return result, nil
}

func (s *DirectorySearcher) handle(path string, err error) error {
	if s.OnError == nil {
		return err
	}
	return s.OnError(path, err)
}

// isRegularFile reports whether entry is a regular file, following symlinks.
// Dangling symlinks are not regular files.
func isRegularFile(path string, entry os.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
