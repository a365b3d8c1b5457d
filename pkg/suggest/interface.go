// Package suggest provides frequency ranked prefix completion over the dictionary vocabulary.
package suggest

// ICompleter defines the interface for word completion engines
type ICompleter interface {
	// Complete returns suggestions for a given prefix with a limit
	Complete(prefix string, limit int) []Suggestion

	// AddWord adds a word with its frequency to the completer
	AddWord(word string, frequency int)

	// Stats returns statistics about the loaded words
	Stats() map[string]int
}

// Vocabulary is anything that can enumerate words with their counts.
type Vocabulary interface {
	Walk(fn func(word string, count int))
}
