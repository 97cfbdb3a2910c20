// Package iox provides scoped I/O helpers: temporary working-directory
// changes, stream capture, and wall-clock timing.
package iox

import (
	"fmt"
	"os"
)

// DirectoryChange temporarily moves the process into another working
// directory. Enter records the current directory and changes into the target;
// Exit restores the recorded directory. Not safe for concurrent use since the
// working directory is process-global.
type DirectoryChange struct {
	target   string
	previous string
}

// NewDirectoryChange creates a directory change targeting dir
func NewDirectoryChange(dir string) *DirectoryChange {
	return &DirectoryChange{target: dir}
}

// Enter changes into the target directory, remembering the current one
func (dc *DirectoryChange) Enter() error {
	previous, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current working directory: %w", err)
	}
	if err := os.Chdir(dc.target); err != nil {
		return fmt.Errorf("failed to change into %s: %w", dc.target, err)
	}
	dc.previous = previous
	return nil
}

// Exit restores the working directory recorded by Enter
func (dc *DirectoryChange) Exit() error {
	if dc.previous == "" {
		return nil
	}
	if err := os.Chdir(dc.previous); err != nil {
		return fmt.Errorf("failed to change back into %s: %w", dc.previous, err)
	}
	dc.previous = ""
	return nil
}

// InDirectory runs fn with the working directory set to dir, restoring the
// previous working directory afterwards on every exit path. The restore error
// is surfaced only when fn itself succeeded.
func InDirectory(dir string, fn func() error) error {
	dc := NewDirectoryChange(dir)
	if err := dc.Enter(); err != nil {
		return err
	}
	fnErr := fn()
	if err := dc.Exit(); err != nil && fnErr == nil {
		return err
	}
	return fnErr
}
