/*
Package dictionary holds the known-word vocabulary used by the checker.

Words are stored verbatim in a PrefixIndex, a character trie whose children
keep first-insertion order. The index answers exact membership queries and
produces suggestion lists for a query: every stored word below the longest
prefix of the query that exists in the trie, depth first, capped by a limit.

Suggestions are intentionally prefix based. There is no edit distance and no
ranking; order is an artifact of insertion order and is part of the contract.

	dict := dictionary.New([]string{"hello", "world", "test", "example"})
	dict.ContainsWord("hello")       // true
	dict.Suggestions("wrld", 0)      // ["world"]
	dict.Suggestions("@world", 2)    // ["hello", "world"]

Dictionaries are usually read from newline separated text files with LoadFile.
*/
package dictionary

// Dictionary owns a PrefixIndex and counts insert calls.
type Dictionary struct {
	wordCount int
	index     *PrefixIndex
}

// New builds a dictionary from words. Duplicates and empty strings are
// inserted and counted like any other word.
func New(words []string) *Dictionary {
	d := &Dictionary{index: NewPrefixIndex()}
	for _, w := range words {
		d.AddWord(w)
	}
	return d
}

// AddWord inserts one word.
func (d *Dictionary) AddWord(word string) {
	d.index.AddWord(word)
	d.wordCount++
}

// WordCount is the number of AddWord calls, not the number of distinct words.
func (d *Dictionary) WordCount() int {
	return d.wordCount
}

// ContainsWord reports exact membership.
func (d *Dictionary) ContainsWord(word string) bool {
	return d.index.ContainsWord(word)
}

// Suggestions returns candidate replacements for word, see PrefixIndex.ClosestWords.
func (d *Dictionary) Suggestions(word string, limit int) []string {
	return d.index.ClosestWords(word, limit)
}

// Walk visits each distinct stored word with the number of times it was added.
func (d *Dictionary) Walk(fn func(word string, count int)) {
	d.index.Walk(fn)
}

// Stats returns basic counters about the loaded vocabulary.
func (d *Dictionary) Stats() map[string]int {
	distinct := 0
	maxCount := 0
	d.index.Walk(func(_ string, count int) {
		distinct++
		if count > maxCount {
			maxCount = count
		}
	})
	return map[string]int{
		"totalWords":    d.wordCount,
		"distinctWords": distinct,
		"maxFrequency":  maxCount,
	}
}
