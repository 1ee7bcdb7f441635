package format

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dhamidi/tagcheck/lint"
	"github.com/dhamidi/tagcheck/markup"
	"github.com/stretchr/testify/require"
)

func sampleResults(dir string) []lint.FileResult {
	return []lint.FileResult{
		{
			Source: filepath.Join(dir, "pages", "a.html"),
			Errors: []markup.ValidationError{
				{Rule: markup.UnexpectedClosingTag, Text: "Unexpected p closing tag", Line: 12, Column: 3},
				{Rule: markup.UnclosedTag, Text: "Unclosed div tag", Line: 1, Column: 1},
			},
		},
		{
			Source: lint.StdinSource,
			Errors: []markup.ValidationError{
				{Rule: markup.UnclosedComment, Text: "Unclosed comment", Line: 2, Column: 10},
			},
		},
		{Source: "clean.html"},
	}
}

func TestTableEncoder(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	enc := NewTableEncoder(&buf, WithColor(false), WithWorkDir(dir))
	require.NoError(t, enc.Encode(sampleResults(dir)))

	want := "\n" +
		"pages/a.html\n" +
		"   1:1  ✖  Unclosed div tag\n" +
		"  12:3  ✖  Unexpected p closing tag\n" +
		"\n" +
		"<stdin>\n" +
		"  2:10  ✖  Unclosed comment\n" +
		"\n"
	require.Equal(t, want, buf.String())
}

func TestTableEncoderNoFindings(t *testing.T) {
	var buf bytes.Buffer
	enc := NewTableEncoder(&buf, WithColor(false))
	require.NoError(t, enc.Encode([]lint.FileResult{{Source: "a.html"}}))
	require.Empty(t, buf.String())
}

func TestTableEncoderRelativeSource(t *testing.T) {
	dir := t.TempDir()
	enc := NewTableEncoder(&bytes.Buffer{}, WithWorkDir(dir))
	require.Equal(t, "sub/x.html", enc.source(filepath.Join("sub", "x.html")))
	require.Equal(t, "sub/x.html", enc.source(filepath.Join(dir, "sub", "x.html")))
	require.Equal(t, "<stdin>", enc.source("<stdin>"))
}

func TestTableEncoderWraps(t *testing.T) {
	var buf bytes.Buffer
	enc := NewTableEncoder(&buf, WithColor(false), WithWidth(30))
	err := enc.Encode([]lint.FileResult{{
		Source: "<x>",
		Errors: []markup.ValidationError{{Text: "Unexpected something closing tag", Line: 1, Column: 1}},
	}})
	require.NoError(t, err)

	want := "\n<x>\n" +
		"  1:1  ✖  Unexpected something\n" +
		"          closing tag\n\n"
	require.Equal(t, want, buf.String())
}

func TestTableEncoderColor(t *testing.T) {
	var buf bytes.Buffer
	enc := NewTableEncoder(&buf, WithColor(true), WithWorkDir(t.TempDir()))
	require.NoError(t, enc.Encode(sampleResults("")[1:2]))
	require.Contains(t, buf.String(), "\x1b[")
	require.Contains(t, buf.String(), "Unclosed comment")
}

func TestWrapWords(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  []string
	}{
		{"short", 20, []string{"short"}},
		{"no wrap at zero", 0, []string{"no wrap at zero"}},
		{"aaa bbb ccc", 7, []string{"aaa bbb", "ccc"}},
		{"averyveryverylongword x", 5, []string{"averyveryverylongword", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			require.Equal(t, tt.want, wrapWords(tt.text, tt.width))
		})
	}
}

func TestJSONEncoder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONEncoder(&buf).Encode(sampleResults("/tmp")))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 3)
	require.Equal(t, lint.StdinSource, decoded[1]["source"])

	first := decoded[0]["errors"].([]any)[0].(map[string]any)
	require.Equal(t, "UnexpectedClosingTag", first["rule"])
	require.Equal(t, float64(12), first["line"])
	require.Equal(t, float64(3), first["column"])

	require.Equal(t, []any{}, decoded[2]["errors"])
	require.True(t, strings.HasSuffix(buf.String(), "\n"))
}

func TestNew(t *testing.T) {
	enc, err := New("json", &bytes.Buffer{})
	require.NoError(t, err)
	require.IsType(t, &JSONEncoder{}, enc)

	enc, err = New("string", &bytes.Buffer{})
	require.NoError(t, err)
	require.IsType(t, &TableEncoder{}, enc)

	enc, err = New("line", &bytes.Buffer{})
	require.NoError(t, err)
	require.IsType(t, &LineEncoder{}, enc)

	_, err = New("xml", &bytes.Buffer{})
	require.Error(t, err)
}

func TestLineEncoder(t *testing.T) {
	results := []lint.FileResult{
		{Source: "a.html", Errors: []markup.ValidationError{
			{Rule: markup.UnclosedTag, Text: "Unclosed div tag", Line: 1, Column: 1},
			{Rule: markup.UnclosedComment, Text: "Unclosed comment", Line: 4, Column: 3},
		}},
		{Source: "clean.html"},
	}

	var buf bytes.Buffer
	require.NoError(t, NewLineEncoder(&buf).Encode(results))
	require.Equal(t,
		"a.html\t1\t1\tUnclosedTag\tUnclosed div tag\n"+
			"a.html\t4\t3\tUnclosedComment\tUnclosed comment\n",
		buf.String())
}
