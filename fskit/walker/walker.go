// Package walker implements lazy depth-first directory traversal.
package walker

import (
	"fmt"
	"iter"
	"log/slog"
	"path/filepath"

	ignore "github.com/sabhiram/go-gitignore"
	"github.com/spf13/afero"

	"github.com/sorenhald/file-system-kit/fskit/options"
)

// Entry is one visited directory: its path plus the sorted full paths of its
// immediate subdirectories and files.
type Entry struct {
	Path  string
	Dirs  []string
	Files []string
}

// Walker traverses directory trees depth-first, one on-demand directory read
// at a time. A Walker is reusable across roots; each Walk invocation starts a
// fresh traversal.
type Walker struct {
	fs      afero.Fs
	opts    options.WalkOptions
	ignored *ignore.GitIgnore
}

// New creates a walker backed by the OS filesystem
func New(opts options.WalkOptions) *Walker {
	return NewWithFs(afero.NewOsFs(), opts)
}

// NewWithFs creates a walker backed by the given filesystem
func NewWithFs(fs afero.Fs, opts options.WalkOptions) *Walker {
	w := &Walker{
		fs:   fs,
		opts: opts,
	}
	if len(opts.IgnorePatterns) > 0 {
		w.ignored = ignore.CompileIgnoreLines(opts.IgnorePatterns...)
	}
	return w
}

// Walk returns a lazy sequence of directory entries under root. With TopDown
// set (the default) a directory is emitted before its subdirectories
// (pre-order); otherwise after all of its descendants (post-order).
//
// Directories are descended in lexicographic order. A filesystem error (root
// missing, unreadable directory) is yielded with a zero-valued entry carrying
// the failing path, and ends the traversal; it is never suppressed. Symlinks
// receive no special handling, so a symlink cycle that the underlying
// filesystem follows will not terminate. Stopping early means breaking out of
// the range loop; no further directories are read after that.
func (w *Walker) Walk(root string) iter.Seq2[Entry, error] {
	root = filepath.Clean(root)
	return func(yield func(Entry, error) bool) {
		type frame struct {
			entry   Entry
			pending []string
			listed  bool
		}
		stack := []*frame{{entry: Entry{Path: root}}}

		for len(stack) > 0 {
			top := stack[len(stack)-1]

			if !top.listed {
				entry, err := w.list(root, top.entry.Path)
				if err != nil {
					yield(Entry{Path: top.entry.Path}, err)
					return
				}
				top.entry = entry
				top.listed = true
				top.pending = append([]string(nil), entry.Dirs...)
				if w.opts.TopDown {
					if !yield(top.entry, nil) {
						return
					}
				}
			}

			if len(top.pending) > 0 {
				next := top.pending[0]
				top.pending = top.pending[1:]
				stack = append(stack, &frame{entry: Entry{Path: next}})
				continue
			}

			if !w.opts.TopDown {
				if !yield(top.entry, nil) {
					return
				}
			}
			stack = stack[:len(stack)-1]
		}
	}
}

// list reads a single directory, splitting its sorted entries into
// subdirectories and files and applying the ignore patterns if any
func (w *Walker) list(root, dir string) (Entry, error) {
	infos, err := afero.ReadDir(w.fs, dir)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	entry := Entry{Path: dir}
	for _, info := range infos {
		full := filepath.Join(dir, info.Name())
		if w.ignored != nil {
			rel, relErr := filepath.Rel(root, full)
			if relErr == nil && w.ignored.MatchesPath(rel) {
				slog.Debug("Skipping ignored path", "path", full)
				continue
			}
		}
		if info.IsDir() {
			entry.Dirs = append(entry.Dirs, full)
		} else {
			entry.Files = append(entry.Files, full)
		}
	}
	return entry, nil
}
