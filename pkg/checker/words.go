package checker

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrNoPath is returned when no file-to-check path was given.
var ErrNoPath = errors.New("file to check path is required")

// letters, joined by single apostrophes, optionally one trailing apostrophe
var alphaWord = regexp.MustCompile(`^[a-zA-Z]+(?:'[a-zA-Z]+)*'?$`)

// IsAlphaWord reports whether word is made only of ASCII letters with
// optional internal apostrophes ("don't") and at most one trailing one.
func IsAlphaWord(word string) bool {
	return alphaWord.MatchString(word)
}

// IsProper reports whether word starts with a cased letter that is already
// upper case. Empty words, words starting with a non-letter and words in
// caseless scripts are never proper.
func IsProper(word string) bool {
	first, _ := utf8.DecodeRuneInString(word)
	if first == utf8.RuneError {
		return false
	}
	return unicode.ToUpper(first) == first && unicode.ToLower(first) != first
}

func isASCIILetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

// ParseWords splits text on whitespace and strips leading and trailing
// non-letters from each token. Interior characters are left untouched.
func ParseWords(text string) []string {
	fields := strings.Fields(text)
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		w := strings.TrimFunc(f, func(r rune) bool { return !isASCIILetter(r) })
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}

// ReadFile tokenizes the file at path with ParseWords.
func ReadFile(path string) ([]string, error) {
	if path == "" {
		return nil, ErrNoPath
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	return ParseWords(string(content)), nil
}

// contextWindow joins up to two tokens either side of words[i].
func contextWindow(words []string, i int) string {
	start := max(0, i-contextRadius)
	end := min(len(words), i+contextRadius+1)
	return strings.Join(words[start:end], " ")
}
