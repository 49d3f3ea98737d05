package fs

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/minigrep"
	"github.com/fwojciec/minigrep/text"
)

// Ensure FileSearcher implements minigrep.FileSearcher at compile time.
var _ minigrep.FileSearcher = (*FileSearcher)(nil)

// FileSearcher implements minigrep.FileSearcher by reading the file from disk
// one line at a time.
type FileSearcher struct {
	// Decode selects the fallback for lines that are not valid UTF-8.
	// The zero value behaves like DecodeLine.
	Decode DecodeMode
}

// NewFileSearcher creates a new FileSearcher using DecodeLine.
func NewFileSearcher() *FileSearcher {
	return &FileSearcher{Decode: DecodeLine}
}

// SearchFile scans the file at path and records every line containing needle.
// Lines are numbered from 1; numbering counts every line, including lines
// that needed a lossy decode.
func (s *FileSearcher) SearchFile(ctx context.Context, path, needle string) (minigrep.MatchIndex, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, ioError(err)
	}
	defer f.Close()

	dec := &decoder{mode: s.Decode, path: path}
	result := make(minigrep.MatchIndex)
	r := bufio.NewReader(f)
	lineNumber := 0

	for {
		raw, err := readLine(r)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, ioError(err)
		}
		lineNumber++

		line, err := dec.decode(raw)
		if err != nil {
			return nil, err
		}

		if strings.Contains(line, needle) {
			result.Add(line, lineNumber)
		}
	}

	return result, nil
}

// readLine returns the next line without its terminator. A trailing "\r"
// before the newline is dropped. Returns io.EOF once no bytes remain.
func readLine(r *bufio.Reader) ([]byte, error) {
	raw, err := r.ReadBytes('\n')
	if err != nil && err != io.EOF {
		return nil, err
	}
	if len(raw) == 0 && err == io.EOF {
		return nil, io.EOF
	}

	if bytes.HasSuffix(raw, []byte("\n")) {
		raw = raw[:len(raw)-1]
		raw = bytes.TrimSuffix(raw, []byte("\r"))
	}
	return raw, nil
}

// decoder turns raw line bytes into text for one file search.
type decoder struct {
	mode DecodeMode
	path string

	// whole is the lossy decoding of the entire file, read on first use.
	whole *string
}

func (d *decoder) decode(raw []byte) (string, error) {
	if line, ok := text.Decode(raw); ok {
		return line, nil
	}

	if d.mode != DecodeFile {
		return text.Lossy(raw), nil
	}

	if d.whole == nil {
		b, err := os.ReadFile(d.path)
		if err != nil {
			return "", ioError(err)
		}
		whole := text.Lossy(b)
		d.whole = &whole
	}
	return *d.whole, nil
}
