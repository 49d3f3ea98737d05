package mock

import (
	"context"

	"github.com/fwojciec/minigrep"
)

var _ minigrep.FileSearcher = (*FileSearcher)(nil)

// FileSearcher is a mock implementation of minigrep.FileSearcher.
type FileSearcher struct {
	SearchFileFn func(ctx context.Context, path, needle string) (minigrep.MatchIndex, error)
}

func (s *FileSearcher) SearchFile(ctx context.Context, path, needle string) (minigrep.MatchIndex, error) {
	return s.SearchFileFn(ctx, path, needle)
}

var _ minigrep.DirectorySearcher = (*DirectorySearcher)(nil)

// DirectorySearcher is a mock implementation of minigrep.DirectorySearcher.
type DirectorySearcher struct {
	SearchDirectoryFn func(ctx context.Context, path, needle string) (minigrep.DirectoryResult, error)
}

func (s *DirectorySearcher) SearchDirectory(ctx context.Context, path, needle string) (minigrep.DirectoryResult, error) {
	return s.SearchDirectoryFn(ctx, path, needle)
}
