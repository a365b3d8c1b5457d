/*
Package checker finds misspelled words in a token sequence.

A token is misspelled when it is not a proper noun (capitalized first letter)
and it either fails the alphabetic shape test or is missing from the
dictionary. Every misspelling carries a context window of up to two tokens on
each side and the dictionary's suggestions for the original, unmodified token.

	dict := dictionary.New([]string{"hello", "world", "test", "example"})
	found := checker.MisspelledWords([]string{"hello", "wrld", "test"}, dict, 0)
	// found[0] = {Word: "wrld", Context: "hello wrld test", Suggestions: ["world"]}

Tokens are produced from raw text with ParseWords.
*/
package checker

import (
	"github.com/charmbracelet/log"
)

const contextRadius = 2

// Lexicon is what the checker needs from a dictionary.
type Lexicon interface {
	ContainsWord(word string) bool
	Suggestions(word string, limit int) []string
}

// MisspelledWord is one reported token.
type MisspelledWord struct {
	Word        string   `msgpack:"w" json:"word"`
	Context     string   `msgpack:"c" json:"context"`
	Suggestions []string `msgpack:"s" json:"suggestions"`
}

// Option configures a Checker.
type Option func(*Checker)

// WithCacheSize memoizes suggestion lookups for up to n distinct tokens.
func WithCacheSize(n int) Option {
	return func(c *Checker) {
		if n > 0 {
			c.cache = NewSuggestionCache(n)
		}
	}
}

// Checker runs spell checks against a fixed lexicon and suggestion limit.
type Checker struct {
	lexicon         Lexicon
	suggestionLimit int
	cache           *SuggestionCache
}

// New creates a checker. A suggestion limit of zero means unlimited.
func New(lexicon Lexicon, suggestionLimit int, opts ...Option) *Checker {
	c := &Checker{
		lexicon:         lexicon,
		suggestionLimit: suggestionLimit,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// MisspelledWords checks words once against lexicon without caching.
func MisspelledWords(words []string, lexicon Lexicon, suggestionLimit int) []MisspelledWord {
	return New(lexicon, suggestionLimit).Check(words)
}

// IsMisspelled applies the classification rule to a single token.
func (c *Checker) IsMisspelled(word string) bool {
	if IsProper(word) {
		return false
	}
	return !IsAlphaWord(word) || !c.lexicon.ContainsWord(word)
}

// Check walks words in order and returns every misspelling found.
// The result is never nil.
func (c *Checker) Check(words []string) []MisspelledWord {
	found := []MisspelledWord{}
	for i, word := range words {
		if !c.IsMisspelled(word) {
			continue
		}
		found = append(found, MisspelledWord{
			Word:        word,
			Context:     contextWindow(words, i),
			Suggestions: c.suggestions(word),
		})
	}
	log.Debugf("Checked %d words, %d misspelled", len(words), len(found))
	return found
}

// Stats reports cache counters, if a cache is configured.
func (c *Checker) Stats() map[string]int {
	if c.cache == nil {
		return map[string]int{"cache": 0}
	}
	stats := c.cache.Stats()
	stats["cache"] = 1
	return stats
}

func (c *Checker) suggestions(word string) []string {
	if c.cache != nil {
		if cached, ok := c.cache.Get(word); ok {
			return cached
		}
	}
	s := c.lexicon.Suggestions(word, c.suggestionLimit)
	if s == nil {
		s = []string{}
	}
	if c.cache != nil {
		c.cache.Put(word, s)
	}
	return s
}
