package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/fwojciec/minigrep"
	"github.com/fwojciec/minigrep/fs"
	mgslog "github.com/fwojciec/minigrep/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
// Errors are reported on stderr before being returned.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("minigrep"),
		kong.Description("Search for a string in a file, or in every file directly inside a directory."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		err := fmt.Errorf("no arguments provided")
		fmt.Fprintf(stderr, "error: %s\n", err)
		return err
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		fmt.Fprintf(stderr, "error: %s\n", err)
		return err
	}

	decode, err := fs.ParseDecodeMode(cli.Decode)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", minigrep.ErrorMessage(err))
		return err
	}

	// Search timings are logged at info level; skipped files always warn.
	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire dependencies
	files := mgslog.NewLoggingFileSearcher(&fs.FileSearcher{Decode: decode}, logger)
	directories := fs.NewDirectorySearcher(files)
	directories.SkipBinary = cli.SkipBinary
	if cli.KeepGoing {
		directories.OnError = mgslog.SkipFile(logger)
	}

	deps := &Dependencies{
		Ctx:         ctx,
		Stdout:      stdout,
		Stderr:      stderr,
		Files:       files,
		Directories: mgslog.NewLoggingDirectorySearcher(directories, logger),
		Style:       newStyle(cli.Color),
	}

	cmd := &SearchCmd{
		Path:      cli.Filepath,
		Needle:    cli.SearchString,
		Directory: cli.Directory,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Directory    bool   `short:"d" help:"Search every file directly inside the directory at FILEPATH (not recursive)"`
	Decode       string `enum:"line,file" default:"line" env:"MINIGREP_DECODE" help:"Fallback for lines that are not valid UTF-8: decode the line, or substitute the whole file (${enum})"`
	KeepGoing    bool   `short:"k" help:"In directory mode, skip files that cannot be read instead of stopping"`
	SkipBinary   bool   `help:"In directory mode, skip images, archives and other known binary files"`
	Color        string `enum:"auto,always,never" default:"auto" help:"Colorize output (${enum})"`
	Verbose      bool   `short:"v" help:"Log each file searched to stderr"`
	Filepath     string `arg:"" name:"filepath" help:"Path to the file (or directory with -d) to search"`
	SearchString string `arg:"" name:"search_string" help:"String to search for (case sensitive)"`
}

// newStyle returns the output style for the given color mode.
// In auto mode color follows terminal detection on stdout.
func newStyle(mode string) minigrep.Style {
	path := color.New(color.FgMagenta, color.Bold)
	numbers := color.New(color.FgGreen)

	switch mode {
	case "always":
		path.EnableColor()
		numbers.EnableColor()
	case "never":
		path.DisableColor()
		numbers.DisableColor()
	}

	return minigrep.Style{
		Path:    path.SprintFunc(),
		Numbers: numbers.SprintFunc(),
	}
}
