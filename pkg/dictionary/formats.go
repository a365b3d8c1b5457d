package dictionary

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// FileFormat represents different dictionary file formats
type FileFormat int

const (
	FormatUnknown FileFormat = iota
	FormatText               // one word per line
)

// FormatInfo contains metadata about a dictionary file format
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extensions  []string
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatText: {
		Format:      FormatText,
		Description: "Plain Text Word List",
		// words files commonly ship without an extension (/usr/share/dict/words)
		Extensions: []string{".txt", ".dic", ".lst", ".words", ""},
	},
}

// sniffSize is how much of a file is inspected for binary content.
const sniffSize = 1024

// ValidateFileFormat checks that filename exists, is a regular readable file
// and looks like the expected format.
func ValidateFileFormat(filename string, expectedFormat FileFormat) error {
	fileInfo, err := os.Stat(filename)
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", filename, err)
	}
	if fileInfo.IsDir() {
		return fmt.Errorf("%s is a directory", filename)
	}

	formatInfo, exists := supportedFormats[expectedFormat]
	if !exists {
		return fmt.Errorf("unknown format: %v", expectedFormat)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	validExt := false
	for _, validExtension := range formatInfo.Extensions {
		if ext == validExtension {
			validExt = true
			break
		}
	}
	if !validExt {
		// Extensions are only a hint; content decides.
		log.Debugf("File %s has unusual extension %q for %s", filename, ext, formatInfo.Description)
	}

	switch expectedFormat {
	case FormatText:
		return validateTextFormat(filename)
	}
	return nil
}

// validateTextFormat rejects files that are unreadable or contain NUL bytes.
func validateTextFormat(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", filename, err)
	}
	defer file.Close()

	buffer := make([]byte, sniffSize)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to read from text file %s: %w", filename, err)
	}
	if bytes.IndexByte(buffer[:n], 0) >= 0 {
		return fmt.Errorf("file %s looks binary, expected %s", filename, supportedFormats[FormatText].Description)
	}

	log.Debugf("Text file %s validated", filename)
	return nil
}
