package suggest

import (
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// SearchTrie collects every word below prefix with at least minThreshold
// frequency. The prefix itself is skipped.
func SearchTrie(trie *patricia.Trie, prefix string, minThreshold int) []Suggestion {
	if trie == nil {
		return []Suggestion{}
	}

	var suggestions []Suggestion

	err := trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		word := string(p)
		if word == prefix {
			return nil
		}

		freq := 1
		switch v := item.(type) {
		case int:
			freq = v
		case int32:
			freq = int(v)
		case uint32:
			freq = int(v)
		default:
			log.Errorf("Unknown item type: %T for word %s", item, p)
		}

		if freq < minThreshold {
			return nil
		}

		suggestions = append(suggestions, Suggestion{
			Word:      word,
			Frequency: freq,
		})
		return nil
	})

	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
	}

	return suggestions
}
