// Package workspace keeps validated documents in memory and feeds them to
// long-running front ends: the file watcher and the language server.
package workspace

import (
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/dhamidi/tagcheck/markup"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("tagcheck.workspace")

type Workspace struct {
	mu      sync.RWMutex
	rootDir string
	include []string
	opts    []markup.Option
	files   map[string]*Document
}

// Document is the last validated content of one file. Err is set when the
// scanner failed on Content.
type Document struct {
	Path    string
	Content []byte
	Result  markup.Result
	Err     error
}

// New returns a workspace rooted at rootDir. include holds doublestar
// patterns, relative to rootDir, selecting the files LoadAll and the watcher
// pick up.
func New(rootDir string, include []string, opts ...markup.Option) *Workspace {
	patterns := make([]string, len(include))
	for i, pattern := range include {
		patterns[i] = path.Clean(filepath.ToSlash(pattern))
	}
	return &Workspace{
		rootDir: rootDir,
		include: patterns,
		opts:    opts,
		files:   make(map[string]*Document),
	}
}

func (w *Workspace) RootDir() string {
	return w.rootDir
}

// Matches reports whether path is selected by the include patterns.
func (w *Workspace) Matches(path string) bool {
	rel, err := filepath.Rel(w.rootDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range w.include {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// LoadAll validates every included file under the root directory.
func (w *Workspace) LoadAll() error {
	return filepath.Walk(w.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if path != w.rootDir && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if w.Matches(path) {
			if _, err := w.Load(path); err != nil {
				log.Warningf("load %s: %s", path, err)
			}
		}
		return nil
	})
}

// Load reads path from disk and validates it.
func (w *Workspace) Load(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return w.Update(path, content), nil
}

// Update validates content as the new text of path.
func (w *Workspace) Update(path string, content []byte) *Document {
	result, err := markup.Validate(string(content), w.opts...)
	if err != nil {
		log.Errorf("validate %s: %s", path, err)
	}

	doc := &Document{
		Path:    path,
		Content: content,
		Result:  result,
		Err:     err,
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.files[path] = doc
	return doc
}

func (w *Workspace) Remove(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.files, path)
}

func (w *Workspace) Get(path string) *Document {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.files[path]
}

// Paths returns the known paths in sorted order.
func (w *Workspace) Paths() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	paths := make([]string, 0, len(w.files))
	for path := range w.files {
		paths = append(paths, path)
	}
	slices.Sort(paths)
	return paths
}
