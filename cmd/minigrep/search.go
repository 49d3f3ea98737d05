package main

import (
	"fmt"

	"github.com/fwojciec/minigrep"
)

// Run executes the search and prints the matches.
func (c *SearchCmd) Run(deps *Dependencies) error {
	if c.Directory {
		result, err := deps.Directories.SearchDirectory(deps.Ctx, c.Path, c.Needle)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", minigrep.ErrorMessage(err))
			return err
		}
		fmt.Fprint(deps.Stdout, minigrep.FormatDirectoryResult(result, deps.Style))
		return nil
	}

	result, err := deps.Files.SearchFile(deps.Ctx, c.Path, c.Needle)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", minigrep.ErrorMessage(err))
		return err
	}
	fmt.Fprint(deps.Stdout, minigrep.FormatMatchIndex(result, deps.Style))
	return nil
}
