package options

import (
	"io"
	"os"

	fskit "github.com/sorenhald/file-system-kit/fskit"
)

// WalkOptions configures directory tree traversal
type WalkOptions struct {
	TopDown        bool     // Emit a directory before its subdirectories (pre-order) rather than after (post-order)
	IgnorePatterns []string // Patterns to ignore (gitignore style); empty means walk everything
}

// DefaultWalkOptions returns walk options matching the documented defaults
func DefaultWalkOptions() WalkOptions {
	return WalkOptions{
		TopDown: true,
	}
}

// WriteOptions configures idempotent file writes
type WriteOptions struct {
	Verbose  bool        // Print a human-readable outcome line per write
	FileMode os.FileMode // Permission bits for created or rewritten files
	DirMode  os.FileMode // Permission bits for created parent directories
	Out      io.Writer   // Destination for verbose output; nil means stdout
}

// DefaultWriteOptions returns write options matching the documented defaults
func DefaultWriteOptions() WriteOptions {
	return WriteOptions{
		Verbose:  false,
		FileMode: fskit.DefaultFileMode,
		DirMode:  fskit.DefaultDirMode,
		Out:      os.Stdout,
	}
}
