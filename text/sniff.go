package text

import (
	"fmt"
	"io"
	"os"

	"github.com/h2non/filetype"
)

// headerSize is enough for every signature filetype knows about.
const headerSize = 261

// IsBinary reports whether header starts with the signature of a known
// binary format. Plain text never matches.
func IsBinary(header []byte) bool {
	return filetype.IsImage(header) ||
		filetype.IsVideo(header) ||
		filetype.IsAudio(header) ||
		filetype.IsArchive(header) ||
		filetype.IsFont(header) ||
		filetype.IsDocument(header) ||
		filetype.IsApplication(header)
}

// SniffFile reads the header of the file at path and reports whether it is
// a known binary format.
func SniffFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	header := make([]byte, headerSize)
	n, err := io.ReadFull(f, header)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return false, fmt.Errorf("read header: %w", err)
	}

	return IsBinary(header[:n]), nil
}
