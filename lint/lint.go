// Package lint finds markup files and validates each of them.
package lint

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/dhamidi/tagcheck/markup"
	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"
)

var log = commonlog.GetLogger("tagcheck.lint")

// Stdin is the pattern that reads a single document from standard input.
const Stdin = "-"

// StdinSource is the Source reported for a document read from standard input.
const StdinSource = "<stdin>"

// FileResult holds the findings for one source.
type FileResult struct {
	Source string                   `json:"source"`
	Errors []markup.ValidationError `json:"errors"`
}

type Options struct {
	// Concurrency bounds how many files are validated at once. Values below
	// one mean one.
	Concurrency int
	Markup      []markup.Option
	Stdin       io.Reader
}

// Expand resolves glob patterns, which may use "**", to file paths. A plain
// path matches itself. Patterns that match nothing are skipped. Paths are
// returned once each, in pattern order.
func Expand(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("expand %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			log.Warningf("no files match %s", pattern)
		}
		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true
			paths = append(paths, match)
		}
	}
	return paths, nil
}

// Run validates every file matched by patterns. Results come back in the
// order Expand returns paths. The first read or scanner failure cancels the
// remaining work and is returned.
func Run(ctx context.Context, patterns []string, opts Options) ([]FileResult, error) {
	var results []FileResult
	var globs []string
	for _, pattern := range patterns {
		if pattern != Stdin {
			globs = append(globs, pattern)
			continue
		}
		if opts.Stdin == nil {
			return nil, fmt.Errorf("read %s: no input", StdinSource)
		}
		data, err := io.ReadAll(opts.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", StdinSource, err)
		}
		result, err := Source(StdinSource, string(data), opts.Markup...)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	paths, err := Expand(globs)
	if err != nil {
		return nil, err
	}

	fileResults := make([]FileResult, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Concurrency, 1))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := File(path, opts.Markup...)
			if err != nil {
				return err
			}
			fileResults[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Debugf("validated %d files", len(paths))
	return append(results, fileResults...), nil
}

// File reads and validates a single file.
func File(path string, opts ...markup.Option) (FileResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileResult{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Source(filepath.Clean(path), string(data), opts...)
}

// Source validates text and labels the result with name.
func Source(name, text string, opts ...markup.Option) (FileResult, error) {
	result, err := markup.Validate(text, opts...)
	if err != nil {
		return FileResult{}, fmt.Errorf("validate %s: %w", name, err)
	}
	return FileResult{Source: name, Errors: result.Errors}, nil
}

// Errored reports whether any result has at least one finding.
func Errored(results []FileResult) bool {
	for _, r := range results {
		if len(r.Errors) > 0 {
			return true
		}
	}
	return false
}
