package suggest

import (
	"sort"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Suggestion is one completion candidate.
type Suggestion struct {
	Word      string
	Frequency int
}

// Completer ranks dictionary words extending a prefix by how often they
// were listed in the dictionary.
type Completer struct {
	trie          *patricia.Trie
	totalWords    int
	distinctWords int
	maxFrequency  int
	minFrequency  int
}

// NewCompleter returns an empty completer. Words below minFrequency are
// never suggested; values below 1 are treated as 1.
func NewCompleter(minFrequency int) *Completer {
	if minFrequency < 1 {
		minFrequency = 1
	}
	return &Completer{
		trie:         patricia.NewTrie(),
		minFrequency: minFrequency,
	}
}

// FromVocabulary builds a completer from every word in v.
func FromVocabulary(v Vocabulary, minFrequency int) *Completer {
	c := NewCompleter(minFrequency)
	v.Walk(c.AddWord)
	log.Debugf("Completer built: %d distinct words, max frequency %d", c.distinctWords, c.maxFrequency)
	return c
}

// AddWord adds frequency to word. Empty words are ignored.
func (c *Completer) AddWord(word string, frequency int) {
	if word == "" || frequency <= 0 {
		return
	}
	c.totalWords += frequency
	key := patricia.Prefix(word)
	if existing, ok := c.trie.Get(key).(int); ok {
		frequency += existing
	} else {
		c.distinctWords++
	}
	c.trie.Set(key, frequency)
	if frequency > c.maxFrequency {
		c.maxFrequency = frequency
	}
}

// Complete returns up to limit words strictly extending prefix, most
// frequent first, ties broken alphabetically. limit <= 0 means no cap.
func (c *Completer) Complete(prefix string, limit int) []Suggestion {
	suggestions := SearchTrie(c.trie, prefix, c.minFrequency)

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Frequency != suggestions[j].Frequency {
			return suggestions[i].Frequency > suggestions[j].Frequency
		}
		return suggestions[i].Word < suggestions[j].Word
	})

	if limit > 0 && len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	if suggestions == nil {
		suggestions = []Suggestion{}
	}
	return suggestions
}

// Stats returns counters about the loaded words.
func (c *Completer) Stats() map[string]int {
	return map[string]int{
		"totalWords":    c.totalWords,
		"distinctWords": c.distinctWords,
		"maxFrequency":  c.maxFrequency,
		"minFrequency":  c.minFrequency,
	}
}
