package paths

import (
	"path/filepath"
	"strings"

	"github.com/armon/go-radix"
	"github.com/spf13/afero"
)

// Resolver computes common prefixes and relative paths between filesystem
// locations. The filesystem is only consulted to decide whether a source
// location names a file; all path arithmetic is lexical.
type Resolver struct {
	fs        afero.Fs
	pathUtils *PathUtils
}

// NewResolver creates a resolver backed by the OS filesystem
func NewResolver() *Resolver {
	return NewResolverWithFs(afero.NewOsFs())
}

// NewResolverWithFs creates a resolver backed by the given filesystem
func NewResolverWithFs(fs afero.Fs) *Resolver {
	return &Resolver{
		fs:        fs,
		pathUtils: NewPathUtils(),
	}
}

// FindCommonPrefix returns the deepest path that is an ancestor-of-or-equal-to
// every path in paths. The boolean result is false when paths is empty or no
// shared ancestor exists.
//
// Each input is normalized, then the count table tallies the input itself and
// every one of its ancestors; a candidate qualifies when its count covers all
// inputs, and the deepest qualifier wins. The table is a fresh radix tree per
// call, keyed by normalized path. When several qualifiers tie on depth the
// lexicographically smallest wins; real filesystem paths cannot tie.
func (r *Resolver) FindCommonPrefix(paths []string) (string, bool) {
	if len(paths) == 0 {
		return "", false
	}

	counts := radix.New()
	bump := func(p string) {
		if v, ok := counts.Get(p); ok {
			counts.Insert(p, v.(int)+1)
		} else {
			counts.Insert(p, 1)
		}
	}

	for _, path := range paths {
		normalized := r.pathUtils.Normalize(path)
		bump(normalized)
		for _, ancestor := range r.pathUtils.Ancestors(normalized) {
			bump(ancestor)
		}
	}

	best := ""
	bestDepth := -1
	found := false
	counts.Walk(func(path string, count interface{}) bool {
		if count.(int) >= len(paths) {
			if depth := r.pathUtils.Depth(path); depth > bestDepth {
				best = path
				bestDepth = depth
				found = true
			}
		}
		return false
	})

	return best, found
}

// RelativeTo returns a relative path expressing how to reach target when
// starting from source's containing directory. A source that names an
// existing file degrades to its parent directory first. The result is one
// ".." step per level by which the source sits below the shared ancestor,
// followed by target's remaining segments; it is never normalized further.
func (r *Resolver) RelativeTo(source, target string) (string, error) {
	src := r.pathUtils.Normalize(source)
	if info, err := r.fs.Stat(src); err == nil && !info.IsDir() {
		src = filepath.Dir(src)
	}
	tgt := r.pathUtils.Normalize(target)

	prefix, ok := r.FindCommonPrefix([]string{src, tgt})
	if !ok {
		return "", ErrNoCommonPrefix
	}

	ups := r.pathUtils.Depth(src) - r.pathUtils.Depth(prefix)
	descent := r.pathUtils.Segments(tgt)[r.pathUtils.Depth(prefix):]

	parts := make([]string, 0, ups+len(descent))
	for i := 0; i < ups; i++ {
		parts = append(parts, "..")
	}
	parts = append(parts, descent...)

	if len(parts) == 0 {
		return ".", nil
	}
	return strings.Join(parts, string(filepath.Separator)), nil
}
