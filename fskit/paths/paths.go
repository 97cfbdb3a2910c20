// Package paths provides path normalization, ancestry reasoning, and the
// common-prefix / relativization algorithms used across fskit packages.
package paths

import (
	"errors"
	"path/filepath"
	"strings"
)

// Common error types used across fskit packages
var (
	ErrPathEmpty      = errors.New("path cannot be empty")
	ErrPathTooLong    = errors.New("path too long (max 4096 characters)")
	ErrPathInvalid    = errors.New("path contains invalid characters")
	ErrNoCommonPrefix = errors.New("No common prefix")
)

// PathUtils provides path manipulation utilities used across fskit packages
type PathUtils struct{}

// NewPathUtils creates a new PathUtils instance
func NewPathUtils() *PathUtils {
	return &PathUtils{}
}

// Normalize resolves a path to its cleaned absolute form. Relative paths are
// resolved against the current working directory; "." and ".." segments are
// collapsed lexically. Symlinks are not resolved.
func (pu *PathUtils) Normalize(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return filepath.Clean(abs)
}

// Segments splits a normalized path into its ordered components. The
// filesystem root contributes no segments, so Segments("/") is empty.
func (pu *PathUtils) Segments(path string) []string {
	path = filepath.Clean(path)
	trimmed := strings.TrimPrefix(path, string(filepath.Separator))
	if trimmed == "" || trimmed == "." {
		return nil
	}
	return strings.Split(trimmed, string(filepath.Separator))
}

// Depth returns the number of path segments below the root
func (pu *PathUtils) Depth(path string) int {
	return len(pu.Segments(path))
}

// Ancestors returns every proper ancestor of path, nearest first, ending at
// the filesystem root. Built by iterative truncation rather than recursion so
// deep trees cannot exhaust the stack.
func (pu *PathUtils) Ancestors(path string) []string {
	path = filepath.Clean(path)
	var ancestors []string
	for {
		parent := filepath.Dir(path)
		if parent == path {
			break
		}
		ancestors = append(ancestors, parent)
		path = parent
	}
	return ancestors
}

// IsAncestorOrSelf reports whether p's segment sequence is a prefix of q's.
// Both paths are compared in normalized form.
func (pu *PathUtils) IsAncestorOrSelf(p, q string) bool {
	ps := pu.Segments(pu.Normalize(p))
	qs := pu.Segments(pu.Normalize(q))
	if len(ps) > len(qs) {
		return false
	}
	for i := range ps {
		if ps[i] != qs[i] {
			return false
		}
	}
	return true
}

// Validate validates that a path is safe to hand to the filesystem layer
func (pu *PathUtils) Validate(path string) error {
	if path == "" {
		return ErrPathEmpty
	}
	if strings.Contains(path, "\x00") {
		return ErrPathInvalid
	}
	if len(path) > 4096 {
		return ErrPathTooLong
	}
	return nil
}
