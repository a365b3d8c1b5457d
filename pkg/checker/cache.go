package checker

import (
	"math"
	"sync"

	"github.com/charmbracelet/log"
)

// SuggestionCache memoizes suggestion lists by token with LRU eviction.
// Stored and returned slices are copies, so callers own what they get.
type SuggestionCache struct {
	entries     map[string][]string
	accessTime  map[string]int64
	accessCount int64
	hits        int
	misses      int
	maxWords    int
	mu          sync.Mutex
}

// NewSuggestionCache creates a cache holding at most maxWords tokens.
func NewSuggestionCache(maxWords int) *SuggestionCache {
	return &SuggestionCache{
		entries:    make(map[string][]string, maxWords),
		accessTime: make(map[string]int64, maxWords),
		maxWords:   maxWords,
	}
}

// Get returns a copy of the cached suggestions for word.
func (sc *SuggestionCache) Get(word string) ([]string, bool) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	s, ok := sc.entries[word]
	if !ok {
		sc.misses++
		return nil, false
	}
	sc.hits++
	sc.markAccessed(word)
	return append([]string{}, s...), true
}

// Put stores a copy of suggestions for word, evicting the least recently
// used entry when full.
func (sc *SuggestionCache) Put(word string, suggestions []string) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if _, exists := sc.entries[word]; !exists && len(sc.entries) >= sc.maxWords {
		sc.evictLRU()
	}
	sc.entries[word] = append([]string{}, suggestions...)
	sc.markAccessed(word)
}

// Len is the number of cached tokens.
func (sc *SuggestionCache) Len() int {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return len(sc.entries)
}

// Stats returns hit/miss counters and occupancy.
func (sc *SuggestionCache) Stats() map[string]int {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	return map[string]int{
		"cacheWords":  len(sc.entries),
		"maxWords":    sc.maxWords,
		"cacheHits":   sc.hits,
		"cacheMisses": sc.misses,
	}
}

func (sc *SuggestionCache) markAccessed(word string) {
	sc.accessCount++
	sc.accessTime[word] = sc.accessCount
}

func (sc *SuggestionCache) evictLRU() {
	var oldestWord string
	var oldestTime int64 = math.MaxInt64

	for word, accessTime := range sc.accessTime {
		if accessTime < oldestTime {
			oldestTime = accessTime
			oldestWord = word
		}
	}

	if oldestTime != math.MaxInt64 {
		delete(sc.entries, oldestWord)
		delete(sc.accessTime, oldestWord)
		log.Debugf("Evicted '%s' from suggestion cache", oldestWord)
	}
}
