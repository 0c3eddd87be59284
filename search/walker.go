// Package search implements recursive file discovery over a directory
// tree: a depth-first walker with composable inclusion matchers and
// exclusion filters, plus list/set/count aggregations over the visited
// entries.
package search

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/avendal/filekit/internal/util"
	"github.com/avendal/filekit/pattern"
)

// Node is a read-only view of a file-system entry produced by a walk.
type Node struct {
	Name  string // last path component
	Path  string // full path, root-relative to the walked fs
	IsDir bool
	Size  int64 // as reported by the listing; 0 for directories on some backends
}

// Options configures a walk. All fields compose independently.
//
// At most one of Pattern and Match is normally set; when both are set a
// file qualifies if it satisfies either. A nil matcher accepts every file.
// Directories are never tested against the matcher: IncludeDirs alone
// decides whether they are yielded, and matching never prunes descent.
// Exclude filters do prune: an excluded entry is neither yielded nor
// descended into.
type Options struct {
	Recursive   bool
	IncludeDirs bool
	Pattern     *pattern.Compiled
	Match       Predicate
	Exclude     []Predicate

	// StrictErrors surfaces directory-listing failures (including a
	// missing or non-directory root) instead of treating them as empty.
	StrictErrors bool
}

func (o Options) qualifies(n Node) bool {
	if o.Pattern == nil && o.Match == nil {
		return true
	}
	if o.Pattern != nil && o.Pattern.Match(n.Name) {
		return true
	}
	return o.Match != nil && o.Match(n)
}

// Walker performs depth-first traversal of a directory tree. Each walk is
// self-contained: no listings are cached and no handle outlives the call,
// so a single Walker is safe to share between goroutines.
type Walker struct {
	fs  afero.Fs
	log util.Logger
}

// New creates a Walker over the given filesystem.
func New(fs afero.Fs) *Walker {
	return &Walker{
		fs:  fs,
		log: util.GetLogger("search"),
	}
}

// visitor receives walk events. dir fires for each directory child kept
// after exclusion, before descending; file fires for each file child.
type visitor struct {
	dir  func(Node)
	file func(Node)
}

// walk lists dir's immediate children, drops any child matched by an
// exclusion filter, and visits the remainder in listing order. Listing
// failures degrade to zero children unless strict is set.
func (w *Walker) walk(dir string, recursive, strict bool, exclude []Predicate, v visitor) error {
	entries, err := afero.ReadDir(w.fs, dir)
	if err != nil {
		if strict {
			return fmt.Errorf("listing %s: %w", dir, err)
		}
		w.log.Debug().Err(err).Str("dir", dir).Msg("Listing failed, treating as empty")
		return nil
	}

	children := make([]Node, 0, len(entries))
	for _, fi := range entries {
		n := Node{
			Name:  fi.Name(),
			Path:  filepath.Join(dir, fi.Name()),
			IsDir: fi.IsDir(),
			Size:  fi.Size(),
		}
		if anyMatch(exclude, n) {
			continue
		}
		children = append(children, n)
	}

	for _, n := range children {
		if n.IsDir {
			if v.dir != nil {
				v.dir(n)
			}
			if recursive {
				if err := w.walk(n.Path, recursive, strict, exclude, v); err != nil {
					return err
				}
			}
			continue
		}
		if v.file != nil {
			v.file(n)
		}
	}
	return nil
}

func anyMatch(filters []Predicate, n Node) bool {
	for _, f := range filters {
		if f(n) {
			return true
		}
	}
	return false
}

// Find walks root per opts and returns matching nodes in visitation
// order. A missing or unreadable root yields an empty result unless
// opts.StrictErrors is set.
func (w *Walker) Find(root string, opts Options) ([]Node, error) {
	var found []Node
	v := visitor{
		file: func(n Node) {
			if opts.qualifies(n) {
				found = append(found, n)
			}
		},
	}
	if opts.IncludeDirs {
		v.dir = func(n Node) {
			found = append(found, n)
		}
	}
	if err := w.walk(root, opts.Recursive, opts.StrictErrors, opts.Exclude, v); err != nil {
		return nil, err
	}
	return found, nil
}

// FindSet is Find collected into a set keyed by path, for callers that
// only need membership.
func (w *Walker) FindSet(root string, opts Options) (map[string]Node, error) {
	found, err := w.Find(root, opts)
	if err != nil {
		return nil, err
	}
	set := make(map[string]Node, len(found))
	for _, n := range found {
		set[n.Path] = n
	}
	return set, nil
}

// CountOptions configures Count. IncludeDirs is independent of any walk
// that yields nodes: when set, each directory is tallied as it is entered.
type CountOptions struct {
	Recursive    bool
	IncludeDirs  bool
	Exclude      []Predicate
	StrictErrors bool
}

// Count tallies files under root, once per file visited and, when
// opts.IncludeDirs is set, once per directory entered.
func (w *Walker) Count(root string, opts CountOptions) (int64, error) {
	var total int64
	v := visitor{
		file: func(Node) { total++ },
	}
	if opts.IncludeDirs {
		v.dir = func(Node) { total++ }
	}
	if err := w.walk(root, opts.Recursive, opts.StrictErrors, opts.Exclude, v); err != nil {
		return 0, err
	}
	return total, nil
}
