package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidInput(t *testing.T) {
	testCases := []struct {
		input string
		want  bool
	}{
		{"hel", true},
		{"don't", true},
		{"co-op", true},
		{"", false},
		{"123", false},
		{"he@", false},
		{"aaa", false},
		{"aa", true},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, IsValidInput(tc.input), "input %q", tc.input)
	}
}

func TestFormatWithCommas(t *testing.T) {
	testCases := map[int]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		123456:   "123,456",
		1234567:  "1,234,567",
		-1234567: "-1,234,567",
	}
	for n, want := range testCases {
		assert.Equal(t, want, FormatWithCommas(n))
	}
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "word", Plural(1, "word", "words"))
	assert.Equal(t, "words", Plural(0, "word", "words"))
}

func TestCreateRankList(t *testing.T) {
	assert.Equal(t, []uint16{1, 2, 3}, CreateRankList(3))
	assert.Empty(t, CreateRankList(0))
}

func TestTOMLRoundTrip(t *testing.T) {
	type section struct {
		Limit int  `toml:"limit"`
		On    bool `toml:"on"`
	}
	type doc struct {
		Check section `toml:"check"`
	}

	path := filepath.Join(t.TempDir(), "c.toml")
	require.NoError(t, SaveTOMLFile(doc{Check: section{Limit: 7, On: true}}, path))

	var got doc
	require.NoError(t, LoadTOMLFile(path, &got))
	assert.Equal(t, 7, got.Check.Limit)
	assert.True(t, got.Check.On)

	raw, err := ParseTOMLWithRecovery(path)
	require.NoError(t, err)
	sec, ok := ExtractSection(raw, "check")
	require.True(t, ok)

	limit, ok := ExtractInt64(sec, "limit")
	assert.True(t, ok)
	assert.Equal(t, 7, limit)

	on, ok := ExtractBool(sec, "on")
	assert.True(t, ok)
	assert.True(t, on)

	_, ok = ExtractString(sec, "limit")
	assert.False(t, ok)
}

func TestCheckDirStatus(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "dir")
	result := CheckDirStatus(dir)
	assert.True(t, result.Exists)
	assert.True(t, result.Writable)
	assert.NoError(t, result.Error)
	assert.False(t, FileExists(filepath.Join(dir, ".write_test")))
}

func TestResolveInput(t *testing.T) {
	configDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "words.txt"), []byte("a\n"), 0644))

	pr := &PathResolver{configDir: configDir, executableDir: t.TempDir(), homeDir: t.TempDir()}

	assert.Equal(t, filepath.Join(configDir, "words.txt"), pr.ResolveInput("words.txt"))
	assert.Equal(t, "does-not-exist.txt", pr.ResolveInput("does-not-exist.txt"))
	assert.Equal(t, "", pr.ResolveInput(""))

	abs := filepath.Join(configDir, "x")
	assert.Equal(t, abs, pr.ResolveInput(abs))
}

func TestGetConfigPath(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), "cfg")
	pr := &PathResolver{configDir: configDir, executableDir: t.TempDir(), homeDir: t.TempDir()}

	path, err := pr.GetConfigPath("config.toml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(configDir, "config.toml"), path)
}
