// Package slog provides logging decorators for the minigrep searchers.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/minigrep"
)

// Ensure LoggingFileSearcher implements minigrep.FileSearcher.
var _ minigrep.FileSearcher = (*LoggingFileSearcher)(nil)

// LoggingFileSearcher wraps a FileSearcher with debug logging.
type LoggingFileSearcher struct {
	next   minigrep.FileSearcher
	logger *slog.Logger
}

// NewLoggingFileSearcher creates a new LoggingFileSearcher.
func NewLoggingFileSearcher(next minigrep.FileSearcher, logger *slog.Logger) *LoggingFileSearcher {
	return &LoggingFileSearcher{next: next, logger: logger}
}

// SearchFile delegates to the wrapped searcher and logs the operation.
func (s *LoggingFileSearcher) SearchFile(ctx context.Context, path, needle string) (result minigrep.MatchIndex, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search file",
			"path", path,
			"lines", len(result),
			"matches", result.Count(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SearchFile(ctx, path, needle)
}

// Ensure LoggingDirectorySearcher implements minigrep.DirectorySearcher.
var _ minigrep.DirectorySearcher = (*LoggingDirectorySearcher)(nil)

// LoggingDirectorySearcher wraps a DirectorySearcher with debug logging.
type LoggingDirectorySearcher struct {
	next   minigrep.DirectorySearcher
	logger *slog.Logger
}

// NewLoggingDirectorySearcher creates a new LoggingDirectorySearcher.
func NewLoggingDirectorySearcher(next minigrep.DirectorySearcher, logger *slog.Logger) *LoggingDirectorySearcher {
	return &LoggingDirectorySearcher{next: next, logger: logger}
}

// SearchDirectory delegates to the wrapped searcher and logs the operation.
func (s *LoggingDirectorySearcher) SearchDirectory(ctx context.Context, path, needle string) (result minigrep.DirectoryResult, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search directory",
			"path", path,
			"files", len(result),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SearchDirectory(ctx, path, needle)
}

// SkipFile returns an error handler for fs.DirectorySearcher that logs each
// failing file as a warning and continues with the next one.
func SkipFile(logger *slog.Logger) func(path string, err error) error {
	return func(path string, err error) error {
		logger.Warn("skipping file",
			"path", path,
			"err", minigrep.ErrorMessage(err),
		)
		return nil
	}
}
