package main

import (
	"context"
	"io"

	"github.com/fwojciec/minigrep"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Files       minigrep.FileSearcher
	Directories minigrep.DirectorySearcher
	Style       minigrep.Style
}

// SearchCmd searches a file, or a directory when Directory is set.
type SearchCmd struct {
	Path      string
	Needle    string
	Directory bool
}
