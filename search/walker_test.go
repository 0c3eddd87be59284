package search

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avendal/filekit/pattern"
)

// newTreeFs builds an in-memory fs with the given files (content is the
// file name) and any extra empty directories.
func newTreeFs(t *testing.T, files []string, dirs ...string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, f := range files {
		require.NoError(t, afero.WriteFile(fs, f, []byte(f), 0o644))
	}
	for _, d := range dirs {
		require.NoError(t, fs.MkdirAll(d, 0o755))
	}
	return fs
}

func paths(nodes []Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Path)
	}
	return out
}

func TestFind_NonRecursive_OnlyImmediateFiles(t *testing.T) {
	t.Parallel()

	fs := newTreeFs(t, []string{
		"/root/a.txt",
		"/root/b.log",
		"/root/sub/c.txt",
		"/root/sub/deep/d.txt",
	})
	w := New(fs)

	found, err := w.Find("/root", Options{})

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"/root/a.txt", "/root/b.log"}, paths(found),
		"must yield exactly the immediate file children, independent of nesting elsewhere")
}

func TestFind_Recursive_AllFiles(t *testing.T) {
	t.Parallel()

	fs := newTreeFs(t, []string{
		"/root/a.txt",
		"/root/sub/b.txt",
		"/root/sub/deep/c.log",
	})
	w := New(fs)

	found, err := w.Find("/root", Options{Recursive: true})

	require.NoError(t, err)
	assert.ElementsMatch(t,
		[]string{"/root/a.txt", "/root/sub/b.txt", "/root/sub/deep/c.log"},
		paths(found))
}

func TestFind_WildcardPattern_EndToEnd(t *testing.T) {
	t.Parallel()

	fs := newTreeFs(t, []string{
		"/root/a.txt",
		"/root/sub/b.txt",
		"/root/sub/c.log",
	})
	w := New(fs)

	found, err := w.Find("/root", Options{
		Recursive: true,
		Pattern:   pattern.Wildcard("*.txt"),
	})

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"/root/a.txt", "/root/sub/b.txt"}, paths(found))
}

func TestFind_ExcludeFilter_PrunesSubtree(t *testing.T) {
	t.Parallel()

	fs := newTreeFs(t, []string{
		"/root/a.txt",
		"/root/sub/b.txt",
		"/root/sub/c.log",
	})
	w := New(fs)

	found, err := w.Find("/root", Options{
		Recursive: true,
		Pattern:   pattern.Wildcard("*.txt"),
		Exclude:   []Predicate{MatchName("sub")},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"/root/a.txt"}, paths(found),
		"excluded directory must be neither yielded nor descended into")
}

func TestFind_ExcludeFilters_CommutativeAndIdempotent(t *testing.T) {
	t.Parallel()

	fs := newTreeFs(t, []string{
		"/root/a.txt",
		"/root/b.tmp",
		"/root/skip/c.txt",
		"/root/keep/d.txt",
	})
	w := New(fs)

	f1 := MatchName("skip")
	f2 := MatchWildcard("*.tmp")

	forward, err := w.Find("/root", Options{Recursive: true, Exclude: []Predicate{f1, f2}})
	require.NoError(t, err)
	reverse, err := w.Find("/root", Options{Recursive: true, Exclude: []Predicate{f2, f1}})
	require.NoError(t, err)
	doubled, err := w.Find("/root", Options{Recursive: true, Exclude: []Predicate{f1, f2, f1}})
	require.NoError(t, err)

	want := []string{"/root/a.txt", "/root/keep/d.txt"}
	assert.ElementsMatch(t, want, paths(forward))
	assert.ElementsMatch(t, paths(forward), paths(reverse), "filter order must not matter")
	assert.ElementsMatch(t, paths(forward), paths(doubled), "re-applying a filter must change nothing")
}

func TestFind_ExclusionBeatsInclusion(t *testing.T) {
	t.Parallel()

	fs := newTreeFs(t, []string{
		"/root/a.txt",
		"/root/b.txt",
	})
	w := New(fs)

	found, err := w.Find("/root", Options{
		Pattern: pattern.Wildcard("*.txt"),
		Exclude: []Predicate{MatchName("b.txt")},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"/root/a.txt"}, paths(found))
}

func TestFind_IncludeDirs_YieldsDirectories(t *testing.T) {
	t.Parallel()

	fs := newTreeFs(t, []string{
		"/root/a.txt",
		"/root/sub/b.txt",
	})
	w := New(fs)

	found, err := w.Find("/root", Options{
		Recursive:   true,
		IncludeDirs: true,
		Pattern:     pattern.Wildcard("*.txt"),
	})

	require.NoError(t, err)
	assert.ElementsMatch(t,
		[]string{"/root/a.txt", "/root/sub", "/root/sub/b.txt"},
		paths(found),
		"directories are yielded regardless of the file matcher")
}

func TestFind_MissingRoot_EmptyNotError(t *testing.T) {
	t.Parallel()

	w := New(afero.NewMemMapFs())

	found, err := w.Find("/nowhere", Options{Recursive: true})

	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestFind_MissingRoot_StrictErrors(t *testing.T) {
	t.Parallel()

	w := New(afero.NewMemMapFs())

	_, err := w.Find("/nowhere", Options{Recursive: true, StrictErrors: true})

	assert.Error(t, err)
}

func TestFind_RootIsFile_Empty(t *testing.T) {
	t.Parallel()

	fs := newTreeFs(t, []string{"/root/a.txt"})
	w := New(fs)

	found, err := w.Find("/root/a.txt", Options{Recursive: true})

	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestFindSet_KeyedByPath(t *testing.T) {
	t.Parallel()

	fs := newTreeFs(t, []string{
		"/root/a.txt",
		"/root/sub/b.txt",
	})
	w := New(fs)

	set, err := w.FindSet("/root", Options{Recursive: true})

	require.NoError(t, err)
	require.Len(t, set, 2)
	assert.Contains(t, set, "/root/a.txt")
	assert.Contains(t, set, "/root/sub/b.txt")
	assert.Equal(t, "b.txt", set["/root/sub/b.txt"].Name)
}

func TestCount_FilesOnly(t *testing.T) {
	t.Parallel()

	fs := newTreeFs(t, []string{
		"/root/a.txt",
		"/root/sub/b.txt",
		"/root/sub/deep/c.log",
	})
	w := New(fs)

	total, err := w.Count("/root", CountOptions{Recursive: true})

	require.NoError(t, err)
	assert.Equal(t, int64(3), total, "must equal an exhaustive enumeration of the tree")
}

func TestCount_IncludeDirs(t *testing.T) {
	t.Parallel()

	fs := newTreeFs(t, []string{
		"/root/a.txt",
		"/root/sub/b.txt",
		"/root/sub/deep/c.log",
	})
	w := New(fs)

	total, err := w.Count("/root", CountOptions{Recursive: true, IncludeDirs: true})

	require.NoError(t, err)
	// 3 files + sub + sub/deep
	assert.Equal(t, int64(5), total)
}

func TestCount_NonRecursive(t *testing.T) {
	t.Parallel()

	fs := newTreeFs(t, []string{
		"/root/a.txt",
		"/root/sub/b.txt",
	})
	w := New(fs)

	total, err := w.Count("/root", CountOptions{})

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestMatchExtensions_CaseInsensitive(t *testing.T) {
	t.Parallel()

	fs := newTreeFs(t, []string{
		"/root/a.txt",
		"/root/b.TXT",
		"/root/c.log",
	})
	w := New(fs)

	found, err := w.Find("/root", Options{Match: MatchExtensions("TXT")})

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"/root/a.txt", "/root/b.TXT"}, paths(found))
}
