// Package fileops provides idempotent file-writing primitives.
package fileops

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	fskit "github.com/sorenhald/file-system-kit/fskit"
	"github.com/sorenhald/file-system-kit/fskit/options"
)

// Outcome describes what a write operation did to the destination file
type Outcome int

const (
	// OutcomePreserved means the destination already held the intended contents
	OutcomePreserved Outcome = iota
	// OutcomeWrote means the destination did not exist and was created
	OutcomeWrote
	// OutcomeRewrote means the destination existed with different contents
	OutcomeRewrote
)

// Changed reports whether the operation physically wrote the file
func (o Outcome) Changed() bool {
	return o != OutcomePreserved
}

func (o Outcome) String() string {
	switch o {
	case OutcomeWrote:
		return "wrote"
	case OutcomeRewrote:
		return "rewrote"
	default:
		return "preserved"
	}
}

// FileOps provides low-level file system write operations
type FileOps struct {
	fs afero.Fs
}

// New creates a file operations instance backed by the OS filesystem
func New() *FileOps {
	return NewWithFs(afero.NewOsFs())
}

// NewWithFs creates a file operations instance backed by the given filesystem
func NewWithFs(fs afero.Fs) *FileOps {
	return &FileOps{fs: fs}
}

// WriteIfChanged ensures the file at dest holds exactly contents, writing only
// when the current contents differ. Missing parent directories are created
// before a fresh write. The write is in-place; a crash mid-write can leave a
// partially written file.
//
// In verbose mode a single "<outcome>: <path>" line is printed to opts.Out
// (stdout when nil). Filesystem errors are wrapped and returned; nothing is
// retried or rolled back.
func (fo *FileOps) WriteIfChanged(contents, dest string, opts options.WriteOptions) (Outcome, error) {
	dest = filepath.Clean(dest)
	if opts.FileMode == 0 {
		opts.FileMode = fskit.DefaultFileMode
	}
	if opts.DirMode == 0 {
		opts.DirMode = fskit.DefaultDirMode
	}

	var outcome Outcome
	existing, err := afero.ReadFile(fo.fs, dest)
	switch {
	case err == nil:
		if string(existing) == contents {
			outcome = OutcomePreserved
		} else {
			if err := afero.WriteFile(fo.fs, dest, []byte(contents), opts.FileMode); err != nil {
				return OutcomePreserved, fmt.Errorf("failed to rewrite %s: %w", dest, err)
			}
			outcome = OutcomeRewrote
		}
	case os.IsNotExist(err):
		if err := fo.EnsureDir(filepath.Dir(dest), opts.DirMode); err != nil {
			return OutcomePreserved, err
		}
		if err := afero.WriteFile(fo.fs, dest, []byte(contents), opts.FileMode); err != nil {
			return OutcomePreserved, fmt.Errorf("failed to write %s: %w", dest, err)
		}
		outcome = OutcomeWrote
	default:
		return OutcomePreserved, fmt.Errorf("failed to read existing contents of %s: %w", dest, err)
	}

	if opts.Verbose {
		var out io.Writer = os.Stdout
		if opts.Out != nil {
			out = opts.Out
		}
		fmt.Fprintf(out, "%s: %s\n", outcome, dest)
	} else {
		slog.Debug("Write completed", "outcome", outcome.String(), "path", dest)
	}

	return outcome, nil
}

// EnsureDir creates path and any missing parents with the given mode
func (fo *FileOps) EnsureDir(path string, mode os.FileMode) error {
	if err := fo.fs.MkdirAll(path, mode); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}
