package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dhamidi/tagcheck/markup"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tagcheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	require.Equal(t, "string", cfg.Format)
	require.Equal(t, 8, cfg.Concurrency)
	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, []string{"**/*.html", "**/*.htm"}, cfg.Include)
	require.Empty(t, cfg.RawText)
	require.False(t, cfg.NoColor)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
format: json
raw_text: [textarea, pre]
void: [br, hr]
concurrency: 2
`)

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	require.Equal(t, "json", cfg.Format)
	require.Equal(t, []string{"textarea", "pre"}, cfg.RawText)
	require.Equal(t, []string{"br", "hr"}, cfg.Void)
	require.Equal(t, 2, cfg.Concurrency)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "format: json\n")
	t.Setenv("TAGCHECK_FORMAT", "string")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	require.Equal(t, "string", cfg.Format)
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	t.Setenv("TAGCHECK_FORMAT", "string")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("format", "string", "")
	flags.StringSlice("void", nil, "")
	require.NoError(t, flags.Parse([]string{"--format", "json", "--void", "br,hr"}))

	v := viper.New()
	require.NoError(t, BindFlags(v, flags))
	cfg, err := Load(v, writeConfig(t, ""))
	require.NoError(t, err)
	require.Equal(t, "json", cfg.Format)
	require.Equal(t, []string{"br", "hr"}, cfg.Void)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown format", "format: xml\n"},
		{"zero concurrency", "concurrency: 0\n"},
		{"empty void name", "void: ['']\n"},
		{"no include", "include: []\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(viper.New(), writeConfig(t, tt.body))
			require.Error(t, err)
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestMarkupOptions(t *testing.T) {
	cfg := Config{RawText: []string{"textarea"}, Void: []string{"br"}}

	result, err := markup.Validate("<p><br><textarea></p></textarea></p>", cfg.MarkupOptions()...)
	require.NoError(t, err)
	require.Empty(t, result.Errors)
	require.Len(t, result.Tags, 3)
}
