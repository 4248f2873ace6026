package statement

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

var (
	// ErrUnsupportedExtension is returned for files the layout does not accept.
	ErrUnsupportedExtension = errors.New("unsupported file extension")
	// ErrFileNotFound is returned when the input path is not a regular file.
	ErrFileNotFound = errors.New("file does not exist")
)

// Validate checks the input path before anything is read: extension first,
// then existence.
func Validate(path string, layout Layout) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !slices.Contains(layout.Extensions, ext) {
		return fmt.Errorf("the provided file is not a valid %s (%s): %s: %w",
			describe(layout), strings.Join(layout.Extensions, ", "), path, ErrUnsupportedExtension)
	}

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return fmt.Errorf("the file does not exist at path: %s: %w", path, ErrFileNotFound)
	}
	return nil
}

func describe(layout Layout) string {
	if slices.Contains(layout.Extensions, ".xlsx") || slices.Contains(layout.Extensions, ".xls") {
		return "Excel"
	}
	return "CSV"
}
