package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringP("config", "c", "", "config file")
	flags.StringSliceP("standards", "s", []string{DefaultStandard}, "standards")
	flags.StringP("delimiter", "d", DefaultDelimiter, "delimiter")
	flags.String("catalog", "", "catalog file")
	flags.StringP("output", "o", DefaultOutput, "output")
	flags.StringSliceP("exclude", "x", nil, "exclude patterns")
	flags.BoolP("verbose", "v", false, "verbose")
	return flags
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	p := filepath.Join(dir, "standardcheck.yaml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestLoadConfig_Defaults(t *testing.T) {
	ResetConfig()
	chdir(t, t.TempDir())

	cfg, err := LoadConfig("", newFlags())
	require.NoError(t, err)

	assert.Equal(t, []string{"TESTING"}, cfg.Standards)
	assert.Equal(t, ":", cfg.Delimiter)
	assert.Equal(t, "plain", cfg.Output)
	assert.Empty(t, cfg.Exclude)
	assert.Empty(t, cfg.Catalog)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, GetConfigFileUsed())
}

func TestLoadConfig_FileDiscoveredUpward(t *testing.T) {
	ResetConfig()
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	writeConfig(t, root, `standards: [FAT32, ISO9660]
delimiter: "|"
exclude: "**/*.tmp,build/**"
catalog: catalogs/site.yaml
`)
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	chdir(t, nested)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"FAT32", "ISO9660"}, cfg.Standards)
	assert.Equal(t, "|", cfg.Delimiter)
	assert.Equal(t, []string{"**/*.tmp", "build/**"}, cfg.Exclude)
	assert.Equal(t, filepath.Join(root, "catalogs", "site.yaml"), cfg.Catalog)
	assert.Equal(t, filepath.Join(root, "standardcheck.yaml"), GetConfigFileUsed())
}

func TestLoadConfig_ExplicitFileMissing(t *testing.T) {
	ResetConfig()
	chdir(t, t.TempDir())

	_, err := LoadConfig("does-not-exist.yaml", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoadConfig_Precedence(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	cfgPath := writeConfig(t, dir, "standards: FAT32\noutput: text\n")

	t.Run("env overrides file", func(t *testing.T) {
		ResetConfig()
		t.Setenv("STANDARDCHECK_STANDARDS", "POSIX,XOPEN")

		cfg, err := LoadConfig(cfgPath, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"POSIX", "XOPEN"}, cfg.Standards)
		assert.Equal(t, "text", cfg.Output)
	})

	t.Run("flag overrides env", func(t *testing.T) {
		ResetConfig()
		t.Setenv("STANDARDCHECK_STANDARDS", "POSIX")
		flags := newFlags()
		require.NoError(t, flags.Set("standards", "ISO9660"))

		cfg, err := LoadConfig(cfgPath, flags)
		require.NoError(t, err)
		assert.Equal(t, []string{"ISO9660"}, cfg.Standards)
	})

	t.Run("unset flag keeps env", func(t *testing.T) {
		ResetConfig()
		t.Setenv("STANDARDCHECK_OUTPUT", "JSON")

		cfg, err := LoadConfig(cfgPath, newFlags())
		require.NoError(t, err)
		assert.Equal(t, []string{"FAT32"}, cfg.Standards)
		assert.Equal(t, "json", cfg.Output)
	})
}

func TestLoadConfig_EmptyDelimiter(t *testing.T) {
	ResetConfig()
	chdir(t, t.TempDir())
	flags := newFlags()
	require.NoError(t, flags.Set("delimiter", ""))

	_, err := LoadConfig("", flags)
	require.ErrorIs(t, err, ErrBadDelimiter)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{"valid", Config{Delimiter: ":", Output: "plain"}, nil},
		{"multi-char delimiter", Config{Delimiter: " | ", Output: "json"}, nil},
		{"markdown output", Config{Delimiter: ":", Output: "markdown"}, nil},
		{"empty delimiter", Config{Delimiter: "", Output: "plain"}, ErrBadDelimiter},
		{"unknown output", Config{Delimiter: ":", Output: "xml"}, ErrBadOutput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOutputModes_ReturnsCopy(t *testing.T) {
	modes := OutputModes()
	modes[0] = "mutated"
	assert.Equal(t, "plain", OutputModes()[0])
}

func TestGetLogger_Fallback(t *testing.T) {
	l := GetLogger(context.Background())
	require.NotNil(t, l)
	l.Info("discarded")
}
