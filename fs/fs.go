// Package fs provides filesystem implementations of the minigrep searchers.
package fs

import (
	"errors"
	"os"

	"github.com/fwojciec/minigrep"
)

// DecodeMode selects what a file search does with a line that is not valid
// UTF-8.
type DecodeMode string

// DecodeMode constants for FileSearcher.
const (
	// DecodeLine lossy-decodes only the bytes of the offending line.
	DecodeLine DecodeMode = "line"
	// DecodeFile lossy-decodes the whole file and uses that text as the
	// content of the offending line. Kept for output compatibility with the
	// original minigrep.
	DecodeFile DecodeMode = "file"
)

// ParseDecodeMode converts s to a DecodeMode.
// Returns EINVALID for unknown modes.
func ParseDecodeMode(s string) (DecodeMode, error) {
	switch mode := DecodeMode(s); mode {
	case DecodeLine, DecodeFile:
		return mode, nil
	case "":
		return DecodeLine, nil
	default:
		return "", minigrep.Errorf(minigrep.EINVALID, "unknown decode mode %q (want %q or %q)", s, DecodeLine, DecodeFile)
	}
}

// ioError converts an os error into an application error, preserving the
// original as the cause.
func ioError(err error) error {
	code := minigrep.EIO
	if errors.Is(err, os.ErrNotExist) {
		code = minigrep.ENOTFOUND
	}
	return &minigrep.Error{Code: code, Message: err.Error(), Err: err}
}
