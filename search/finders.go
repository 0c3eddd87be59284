package search

import (
	"path/filepath"
	"regexp"

	"github.com/spf13/afero"

	"github.com/avendal/filekit/pattern"
)

// Convenience finders over the walker. All of them share the walker's
// leniency: a missing or unreadable directory behaves as an empty one.

// ContainsFile reports whether dir has an immediate child with the given
// name.
func (w *Walker) ContainsFile(dir, name string) bool {
	entries, err := afero.ReadDir(w.fs, dir)
	if err != nil {
		return false
	}
	for _, fi := range entries {
		if fi.Name() == name {
			return true
		}
	}
	return false
}

// ContainsFileRecursive reports whether name exists anywhere under dir.
func (w *Walker) ContainsFileRecursive(dir, name string) bool {
	found := false
	v := visitor{
		dir: func(n Node) {
			if n.Name == name {
				found = true
			}
		},
		file: func(n Node) {
			if n.Name == name {
				found = true
			}
		},
	}
	// Ignoring the error: lenient mode never returns one.
	_ = w.walk(dir, true, false, nil, v)
	return found
}

// ListDirs returns the immediate directory children of dir.
func (w *Walker) ListDirs(dir string) []Node {
	var dirs []Node
	_ = w.walk(dir, false, false, nil, visitor{
		dir: func(n Node) { dirs = append(dirs, n) },
	})
	return dirs
}

// AllFiles returns the immediate file children of dir.
func (w *Walker) AllFiles(dir string) []Node {
	found, _ := w.Find(dir, Options{})
	return found
}

// AllFilesRecursive returns every file under dir, including directory
// entries themselves when includeDirs is set.
func (w *Walker) AllFilesRecursive(dir string, includeDirs bool) []Node {
	found, _ := w.Find(dir, Options{Recursive: true, IncludeDirs: includeDirs})
	return found
}

// FindWildcard returns the files under dir whose names match the wildcard
// pattern.
func (w *Walker) FindWildcard(dir, wildcard string, recursive bool) []Node {
	found, _ := w.Find(dir, Options{
		Recursive: recursive,
		Pattern:   pattern.CachedWildcard(wildcard),
	})
	return found
}

// FindExtensions returns the files under dir whose names end in one of
// the given extensions, case-insensitively.
func (w *Walker) FindExtensions(dir string, recursive bool, exts ...string) []Node {
	found, _ := w.Find(dir, Options{
		Recursive: recursive,
		Pattern:   pattern.Extensions(exts...),
	})
	return found
}

// FindByPrefixAndExtension returns the files under dir whose names start
// with prefix and carry the given extension.
func (w *Walker) FindByPrefixAndExtension(dir, prefix, ext string, recursive bool) []Node {
	re := regexp.MustCompile("^" + regexp.QuoteMeta(prefix) + ".*\\." + regexp.QuoteMeta(ext) + "$")
	found, _ := w.Find(dir, Options{
		Recursive: recursive,
		Match: func(n Node) bool {
			return re.MatchString(n.Name)
		},
	})
	return found
}

// FileLengthKilobytes returns the stat size of the entry at path in
// kilobytes. The size is that of the single entry only; it is not a
// recursive directory total.
func (w *Walker) FileLengthKilobytes(path string) (int64, error) {
	fi, err := w.fs.Stat(path)
	if err != nil {
		return 0, err
	}
	return fi.Size() / 1024, nil
}

// FileLengthMegabytes returns the stat size of the entry at path in
// megabytes. See FileLengthKilobytes for the non-recursive caveat.
func (w *Walker) FileLengthMegabytes(path string) (int64, error) {
	kb, err := w.FileLengthKilobytes(path)
	if err != nil {
		return 0, err
	}
	return kb / 1024, nil
}

// RootDirectory returns the topmost ancestor of path: the path whose
// parent is itself. Pure path arithmetic, no I/O.
func RootDirectory(path string) string {
	previous := filepath.Clean(path)
	for {
		parent := filepath.Dir(previous)
		if parent == previous {
			return previous
		}
		previous = parent
	}
}
