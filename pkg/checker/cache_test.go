package checker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestionCacheEviction(t *testing.T) {
	sc := NewSuggestionCache(2)

	sc.Put("a", []string{"aa"})
	sc.Put("b", []string{"bb"})
	_, _ = sc.Get("a") // b is now least recently used
	sc.Put("c", []string{"cc"})

	assert.Equal(t, 2, sc.Len())
	_, ok := sc.Get("b")
	assert.False(t, ok)

	got, ok := sc.Get("a")
	assert.True(t, ok)
	assert.Equal(t, []string{"aa"}, got)

	got, ok = sc.Get("c")
	assert.True(t, ok)
	assert.Equal(t, []string{"cc"}, got)
}

func TestSuggestionCacheCopies(t *testing.T) {
	sc := NewSuggestionCache(4)

	in := []string{"x", "y"}
	sc.Put("k", in)
	in[0] = "changed"

	out, _ := sc.Get("k")
	assert.Equal(t, []string{"x", "y"}, out)

	out[1] = "changed"
	again, _ := sc.Get("k")
	assert.Equal(t, []string{"x", "y"}, again)
}

func TestSuggestionCacheOverwrite(t *testing.T) {
	sc := NewSuggestionCache(1)
	sc.Put("k", []string{"1"})
	sc.Put("k", []string{"2"})

	got, ok := sc.Get("k")
	assert.True(t, ok)
	assert.Equal(t, []string{"2"}, got)
	assert.Equal(t, 1, sc.Len())
}

func TestSuggestionCacheEmptySlice(t *testing.T) {
	sc := NewSuggestionCache(1)
	sc.Put("k", nil)

	got, ok := sc.Get("k")
	assert.True(t, ok)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
