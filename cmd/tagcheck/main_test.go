package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/dhamidi/tagcheck/config"
	"github.com/stretchr/testify/require"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: 0},
		{name: "findings", err: &exitError{code: 2}, want: 2},
		{name: "wrapped exit", err: fmt.Errorf("check: %w", &exitError{code: 3}), want: 3},
		{name: "errno", err: fmt.Errorf("read a.html: %w", syscall.ENOENT), want: 1},
		{name: "plain", err: errors.New("boom"), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func TestRunTokens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte("<div>\n  <br/>\n</div>"), 0o644))

	var out bytes.Buffer
	require.NoError(t, runTokens(&out, path, false, nil))
	require.Equal(t, "1:1 open div\n2:3 self-closing br\n3:1 close div\n", out.String())
}

func TestRunTokensJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte("<p>"), 0o644))

	var out bytes.Buffer
	require.NoError(t, runTokens(&out, path, true, nil))
	require.JSONEq(t, `{
		"tags": [{"type": "open", "name": "p", "line": 0, "col": 0}],
		"errors": [{"rule": "UnclosedTag", "text": "Unclosed p tag", "line": 1, "column": 1}]
	}`, out.String())
}

func TestRunTokensMissingFile(t *testing.T) {
	err := runTokens(&bytes.Buffer{}, filepath.Join(t.TempDir(), "missing.html"), false, nil)
	require.ErrorIs(t, err, os.ErrNotExist)
	require.Equal(t, 1, exitCode(err))
}

func TestRootCommandFindings(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	require.NoError(t, os.WriteFile("bad.html", []byte("<div>"), 0o644))

	cmd := newRootCmd()
	cmd.SetArgs([]string{"check", "--format", "json", "bad.html"})
	err := cmd.Execute()
	require.Equal(t, 2, exitCode(err))
}

func TestCheckPipedOutputHasNoColor(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	require.NoError(t, os.WriteFile("bad.html", []byte("<div>"), 0o644))

	r, w, err := os.Pipe()
	require.NoError(t, err)
	stdout := os.Stdout
	os.Stdout = w
	t.Cleanup(func() { os.Stdout = stdout })

	cmd := newRootCmd()
	cmd.SetArgs([]string{"check", "bad.html"})
	execErr := cmd.Execute()
	require.NoError(t, w.Close())
	os.Stdout = stdout

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, 2, exitCode(execErr))
	require.Contains(t, string(out), "Unclosed div tag")
	require.NotContains(t, string(out), "\x1b[")
}

func TestTableOptions(t *testing.T) {
	require.Empty(t, tableOptions(config.Config{}))
	require.Len(t, tableOptions(config.Config{NoColor: true}), 1)
}
