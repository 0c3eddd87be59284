package create

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDirectory_Lifecycle(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/parent", 0o755))

	assert.Equal(t, StateCreated, NewDirectory(fs, "/parent/child"))
	assert.Equal(t, StateAlreadyExists, NewDirectory(fs, "/parent/child"),
		"second call must not attempt creation")
}

func TestNewDirectory_ExistingFileEntry(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/parent/entry", []byte("x"), 0o644))

	assert.Equal(t, StateAlreadyExists, NewDirectory(fs, "/parent/entry"))
}

func TestNewDirectory_Refused(t *testing.T) {
	t.Parallel()

	base := afero.NewMemMapFs()
	require.NoError(t, base.MkdirAll("/parent", 0o755))
	fs := afero.NewReadOnlyFs(base)

	assert.Equal(t, StateFailed, NewDirectory(fs, "/parent/child"))
}

func TestNewDirectoryAll_CreatesAncestors(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()

	assert.Equal(t, StateCreated, NewDirectoryAll(fs, "/a/b/c"))

	fi, err := fs.Stat("/a/b/c")
	require.NoError(t, err)
	assert.True(t, fi.IsDir())
}

func TestNewDirectoryIn(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/parent", 0o755))

	path, state, err := NewDirectoryIn(fs, "/parent", "child")

	require.NoError(t, err)
	assert.Equal(t, "/parent/child", path)
	assert.Equal(t, StateCreated, state)
}

func TestNewDirectoryIn_ParentMissing(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()

	_, state, err := NewDirectoryIn(fs, "/gone", "child")

	assert.ErrorIs(t, err, ErrParentNotFound,
		"a missing parent is a precondition violation, not a failed creation")
	assert.Equal(t, StatePending, state)

	exists, statErr := afero.DirExists(fs, "/gone/child")
	require.NoError(t, statErr)
	assert.False(t, exists, "nothing may be created on a precondition violation")
}

func TestNewDirectoryIn_ParentNotDirectory(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/file", []byte("x"), 0o644))

	_, _, err := NewDirectoryIn(fs, "/file", "child")

	assert.ErrorIs(t, err, ErrParentNotDirectory)
}

func TestNewDirectories_FoldsToLastState(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/existing", 0o755))

	state := NewDirectories(fs, []string{"/a", "/existing"})

	assert.Equal(t, StateAlreadyExists, state, "fold reports the last directory processed")
	created, err := afero.DirExists(fs, "/a")
	require.NoError(t, err)
	assert.True(t, created, "earlier directories are still created")
}

func TestNewDirectories_EmptyBatchIsPending(t *testing.T) {
	t.Parallel()

	assert.Equal(t, StatePending, NewDirectories(afero.NewMemMapFs(), nil))
}

func TestNewDirectoriesAll_PerTargetStates(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/existing", 0o755))

	states := NewDirectoriesAll(fs, []string{"/a", "/existing", "/b"})

	assert.Equal(t, map[string]State{
		"/a":        StateCreated,
		"/existing": StateAlreadyExists,
		"/b":        StateCreated,
	}, states)
}

func TestMkParentDirs(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()

	require.NoError(t, MkParentDirs(fs, "/a/b/c/file.txt"))

	exists, err := afero.DirExists(fs, "/a/b/c")
	require.NoError(t, err)
	assert.True(t, exists)

	leaf, err := afero.Exists(fs, "/a/b/c/file.txt")
	require.NoError(t, err)
	assert.False(t, leaf, "the entry itself is not created")
}

func TestState_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "pending", StatePending.String())
	assert.Equal(t, "already-exists", StateAlreadyExists.String())
	assert.Equal(t, "failed", StateFailed.String())
	assert.Equal(t, "created", StateCreated.String())
}
