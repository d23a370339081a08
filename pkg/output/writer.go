// Package output is the filesystem side of a generation run: creating
// directories and writing artifacts.
package output

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"sync"
)

// Writer creates directories and writes files, addressed by slash-separated
// paths relative to the writer's root. Implementations must be safe for
// concurrent use.
type Writer interface {
	// EnsureDir creates dir and any missing parents. It is idempotent.
	EnsureDir(dir string) error
	// WriteFile replaces the file at name with data.
	WriteFile(name string, data []byte) error
}

// FSWriter writes below a directory on the local filesystem
type FSWriter struct {
	root string
}

// NewFSWriter creates a FSWriter rooted at root
func NewFSWriter(root string) *FSWriter {
	return &FSWriter{root: root}
}

func (w *FSWriter) abs(name string) string {
	return filepath.Join(w.root, filepath.FromSlash(name))
}

// EnsureDir creates dir with mode 0755
func (w *FSWriter) EnsureDir(dir string) error {
	if err := os.MkdirAll(w.abs(dir), 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	return nil
}

// WriteFile writes name with mode 0644. The parent directory must exist.
func (w *FSWriter) WriteFile(name string, data []byte) error {
	if err := os.WriteFile(w.abs(name), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// MemoryWriter keeps everything in memory. It backs --dry-run and tests.
// Like the filesystem, it refuses to write into a directory that was never
// ensured.
type MemoryWriter struct {
	mu    sync.RWMutex
	dirs  map[string]bool
	files map[string][]byte
}

// NewMemoryWriter creates an empty MemoryWriter. The root directory exists.
func NewMemoryWriter() *MemoryWriter {
	return &MemoryWriter{
		dirs:  map[string]bool{".": true},
		files: make(map[string][]byte),
	}
}

// EnsureDir records dir and its parents
func (w *MemoryWriter) EnsureDir(dir string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	for d := path.Clean(dir); ; d = path.Dir(d) {
		w.dirs[d] = true
		if d == "." || d == "/" {
			break
		}
	}
	return nil
}

// WriteFile stores a copy of data
func (w *MemoryWriter) WriteFile(name string, data []byte) error {
	name = path.Clean(name)
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.dirs[path.Dir(name)] {
		return fmt.Errorf("write %s: directory %s does not exist", name, path.Dir(name))
	}
	w.files[name] = append([]byte(nil), data...)
	return nil
}

// File returns the content written to name
func (w *MemoryWriter) File(name string) ([]byte, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	data, ok := w.files[path.Clean(name)]
	return data, ok
}

// Files returns every written path, sorted
func (w *MemoryWriter) Files() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	names := make([]string, 0, len(w.files))
	for name := range w.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasDir reports whether dir was ensured
func (w *MemoryWriter) HasDir(dir string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.dirs[path.Clean(dir)]
}
