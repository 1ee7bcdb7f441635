package workspace

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileWatcher polls the workspace root and revalidates included files whose
// modification time changed.
type FileWatcher struct {
	workspace    *Workspace
	stopCh       chan struct{}
	pollInterval time.Duration
	modTimes     map[string]time.Time

	// OnChange is called after a file is (re)validated.
	OnChange func(doc *Document)
	// OnRemove is called after a file disappears.
	OnRemove func(path string)
}

func NewFileWatcher(w *Workspace, pollInterval time.Duration) *FileWatcher {
	return &FileWatcher{
		workspace:    w,
		stopCh:       make(chan struct{}),
		pollInterval: pollInterval,
		modTimes:     make(map[string]time.Time),
	}
}

func (fw *FileWatcher) Start() {
	go fw.run()
}

func (fw *FileWatcher) Stop() {
	close(fw.stopCh)
}

func (fw *FileWatcher) run() {
	ticker := time.NewTicker(fw.pollInterval)
	defer ticker.Stop()

	fw.Scan()

	for {
		select {
		case <-fw.stopCh:
			return
		case <-ticker.C:
			fw.Scan()
		}
	}
}

// Scan performs one poll. It is exported so callers can drive the watcher
// without its goroutine.
func (fw *FileWatcher) Scan() {
	currentFiles := make(map[string]bool)

	filepath.Walk(fw.workspace.RootDir(), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if path != fw.workspace.RootDir() && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !fw.workspace.Matches(path) {
			return nil
		}

		currentFiles[path] = true

		lastMod, known := fw.modTimes[path]
		if known && !info.ModTime().After(lastMod) {
			return nil
		}
		fw.modTimes[path] = info.ModTime()
		doc, err := fw.workspace.Load(path)
		if err != nil {
			log.Warningf("load %s: %s", path, err)
			return nil
		}
		if fw.OnChange != nil {
			fw.OnChange(doc)
		}
		return nil
	})

	for path := range fw.modTimes {
		if currentFiles[path] {
			continue
		}
		delete(fw.modTimes, path)
		fw.workspace.Remove(path)
		if fw.OnRemove != nil {
			fw.OnRemove(path)
		}
	}
}
