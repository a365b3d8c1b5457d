package dictionary

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// ErrNoPath is returned when no dictionary path was given.
var ErrNoPath = errors.New("dictionary file path is required")

// LoadFile reads a newline separated dictionary file.
// Every line, trimmed, is inserted; blank lines become the empty word.
func LoadFile(path string) (*Dictionary, error) {
	if path == "" {
		return nil, ErrNoPath
	}
	if err := ValidateFileFormat(path, FormatText); err != nil {
		return nil, fmt.Errorf("failed to read dictionary file: %w", err)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary file: %w", err)
	}
	defer file.Close()

	start := time.Now()
	d, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary file %s: %w", path, err)
	}
	log.Debugf("Loaded %d words from %s in %v", d.WordCount(), path, time.Since(start))
	return d, nil
}

// Read builds a dictionary from r, one word per line.
func Read(r io.Reader) (*Dictionary, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return New(SplitLines(string(content))), nil
}

// SplitLines splits on '\n' and trims every line. Empty lines are kept.
func SplitLines(content string) []string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lines
}
