package standard

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	c, err := Load(strings.NewReader(`
standards:
  - name: open
  - name: strict
    charset:
      mode: WHITELIST
      chars: 'abc/'
    size_limit: 0
    max_path_length: 12
    symlinks: false
`))
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	open, err := c.Lookup("OPEN")
	require.NoError(t, err)
	assert.Nil(t, open.Charset)
	assert.False(t, open.SizeLimit.IsSet())
	assert.False(t, open.MaxEntries.IsSet())
	assert.False(t, open.MaxComponentLength.IsSet())
	assert.False(t, open.MaxPathLength.IsSet())
	assert.True(t, open.DuplicatesAllowed)
	assert.True(t, open.SymlinksAllowed)
	assert.True(t, open.HardlinksAllowed)

	strict, err := c.Lookup("strict")
	require.NoError(t, err)
	require.NotNil(t, strict.Charset)
	assert.Equal(t, Whitelist, strict.Charset.Mode)
	assert.Equal(t, LimitOf(0), strict.SizeLimit, "explicit zero is a real limit")
	assert.Equal(t, LimitOf(12), strict.MaxPathLength)
	assert.False(t, strict.SymlinksAllowed)
	assert.True(t, strict.HardlinksAllowed)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"empty document", "", ErrInvalidCatalog},
		{"no standards", "standards: []\n", ErrInvalidCatalog},
		{"unknown field", "standards:\n  - name: x\n    colour: red\n", ErrInvalidCatalog},
		{"bad mode", "standards:\n  - name: x\n    charset: {mode: greylist, chars: a}\n", ErrInvalidCatalog},
		{"empty chars", "standards:\n  - name: x\n    charset: {mode: blacklist}\n", ErrInvalidCatalog},
		{"missing name", "standards:\n  - size_limit: 3\n", ErrInvalidCatalog},
		{"duplicate name", "standards:\n  - name: x\n  - name: X\n", ErrDuplicateStandard},
		{"negative limit", "standards:\n  - name: x\n    size_limit: -1\n", ErrInvalidCatalog},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("standards:\n  - name: tiny\n    max_path_length: 4\n"), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	s, err := c.Lookup("tiny")
	require.NoError(t, err)
	assert.Equal(t, LimitOf(4), s.MaxPathLength)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestCharsetMode_Text(t *testing.T) {
	var m CharsetMode
	require.NoError(t, m.UnmarshalText([]byte("whitelist")))
	assert.Equal(t, Whitelist, m)
	assert.Equal(t, "whitelist", m.String())

	require.Error(t, m.UnmarshalText([]byte("nope")))
	assert.Equal(t, "invalid(9)", CharsetMode(9).String())
}
