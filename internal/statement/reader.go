package statement

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileReader opens statement files from disk and picks a decoder by extension.
type FileReader struct{}

// Read parses the file at path with layout.
func (FileReader) Read(path string, layout Layout) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx":
		return ReadXLSX(f, layout)
	case ".xls":
		return ReadXLS(f, layout)
	case ".csv", ".txt", ".tsv":
		return ReadDelimited(f, layout)
	default:
		return nil, fmt.Errorf("no reader for %q files: %w", ext, ErrUnsupportedExtension)
	}
}
