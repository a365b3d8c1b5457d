package suggest

import (
	"testing"

	"github.com/bastiangx/wordcheck/pkg/dictionary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tchap/go-patricia/v2/patricia"
)

func TestCompleteRanking(t *testing.T) {
	d := dictionary.New([]string{"help", "hello", "helmet", "hello", "help", "hello", "world"})
	c := FromVocabulary(d, 1)

	got := c.Complete("hel", 0)
	require.Len(t, got, 3)
	assert.Equal(t, Suggestion{Word: "hello", Frequency: 3}, got[0])
	assert.Equal(t, Suggestion{Word: "help", Frequency: 2}, got[1])
	assert.Equal(t, Suggestion{Word: "helmet", Frequency: 1}, got[2])

	assert.Len(t, c.Complete("hel", 2), 2)
}

func TestCompleteSkipsExactPrefix(t *testing.T) {
	c := NewCompleter(1)
	c.AddWord("test", 1)
	c.AddWord("tests", 1)

	got := c.Complete("test", 0)
	assert.Equal(t, []Suggestion{{Word: "tests", Frequency: 1}}, got)
}

func TestCompleteTiesAlphabetical(t *testing.T) {
	c := NewCompleter(0)
	for _, w := range []string{"cat", "car", "cab"} {
		c.AddWord(w, 1)
	}

	got := c.Complete("ca", 0)
	words := make([]string, len(got))
	for i, s := range got {
		words[i] = s.Word
	}
	assert.Equal(t, []string{"cab", "car", "cat"}, words)
}

func TestCompleteThreshold(t *testing.T) {
	c := NewCompleter(2)
	c.AddWord("rare", 1)
	c.AddWord("rarely", 5)

	got := c.Complete("ra", 0)
	assert.Equal(t, []Suggestion{{Word: "rarely", Frequency: 5}}, got)
}

func TestCompleteNoMatch(t *testing.T) {
	c := NewCompleter(1)
	c.AddWord("alpha", 1)

	got := c.Complete("zzz", 10)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAddWordIgnoresEmpty(t *testing.T) {
	c := NewCompleter(1)
	c.AddWord("", 3)
	c.AddWord("x", 0)

	stats := c.Stats()
	assert.Equal(t, 0, stats["totalWords"])
	assert.Equal(t, 0, stats["distinctWords"])
}

func TestStats(t *testing.T) {
	c := FromVocabulary(dictionary.New([]string{"a", "b", "b", ""}), 1)
	stats := c.Stats()

	assert.Equal(t, 2, stats["distinctWords"])
	assert.Equal(t, 3, stats["totalWords"])
	assert.Equal(t, 2, stats["maxFrequency"])

	c.AddWord("b", 4)
	stats = c.Stats()
	assert.Equal(t, 2, stats["distinctWords"])
	assert.Equal(t, 7, stats["totalWords"])
	assert.Equal(t, 6, stats["maxFrequency"])
}

func TestSearchTrieNil(t *testing.T) {
	assert.Empty(t, SearchTrie(nil, "a", 1))

	trie := patricia.NewTrie()
	trie.Insert(patricia.Prefix("abc"), 7)
	trie.Insert(patricia.Prefix("abd"), "bogus")

	got := SearchTrie(trie, "ab", 1)
	assert.ElementsMatch(t, []Suggestion{{Word: "abc", Frequency: 7}, {Word: "abd", Frequency: 1}}, got)
}
