// Package create provides directory creation with explicit outcome
// reporting. Every creation attempt is classified as a State value rather
// than an error, so batch creation can continue past individual failures;
// only precondition violations (a missing or non-directory parent) are
// reported as errors, before anything is mutated.
package create

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/avendal/filekit/internal/util"
)

// State classifies the outcome of a directory-creation attempt.
type State int

const (
	// StatePending is the unset sentinel; it is only ever returned for an
	// empty batch.
	StatePending State = iota
	StateAlreadyExists
	StateFailed
	StateCreated
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateAlreadyExists:
		return "already-exists"
	case StateFailed:
		return "failed"
	case StateCreated:
		return "created"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Precondition violations reported before any creation is attempted.
var (
	ErrParentNotFound     = errors.New("parent directory does not exist")
	ErrParentNotDirectory = errors.New("parent is not a directory")
)

var log = util.GetLogger("create")

// NewDirectory creates the directory at path, single level: the parent
// must already exist. Returns StateAlreadyExists without mutation when an
// entry already exists at path, StateCreated on success, StateFailed when
// the filesystem refused the creation.
func NewDirectory(fs afero.Fs, path string) State {
	if exists(fs, path) {
		return StateAlreadyExists
	}
	if err := fs.Mkdir(path, 0o755); err != nil {
		log.Debug().Err(err).Str("path", path).Msg("Directory creation refused")
		return StateFailed
	}
	return StateCreated
}

// NewDirectoryAll is NewDirectory with missing ancestors created as well.
func NewDirectoryAll(fs afero.Fs, path string) State {
	if exists(fs, path) {
		return StateAlreadyExists
	}
	if err := fs.MkdirAll(path, 0o755); err != nil {
		log.Debug().Err(err).Str("path", path).Msg("Directory creation refused")
		return StateFailed
	}
	return StateCreated
}

// NewDirectoryIn creates name under parent and returns the resulting
// path. The parent is checked eagerly: a missing or non-directory parent
// is an error, reported before any mutation and distinct from
// StateFailed, which is reserved for creation attempts that were actually
// made.
func NewDirectoryIn(fs afero.Fs, parent, name string) (string, State, error) {
	fi, err := fs.Stat(parent)
	if err != nil {
		return "", StatePending, fmt.Errorf("%w: %s", ErrParentNotFound, parent)
	}
	if !fi.IsDir() {
		return "", StatePending, fmt.Errorf("%w: %s", ErrParentNotDirectory, parent)
	}
	path := filepath.Join(parent, name)
	return path, NewDirectory(fs, path), nil
}

// NewDirectories creates each directory in order and returns the state of
// the last one processed; an empty batch returns StatePending. This fold
// keeps the historical contract; use NewDirectoriesAll for a per-target
// result.
func NewDirectories(fs afero.Fs, paths []string) State {
	state := StatePending
	for _, path := range paths {
		state = NewDirectory(fs, path)
	}
	return state
}

// NewDirectoriesAll creates each directory and returns the state of every
// target. Failures do not stop the batch.
func NewDirectoriesAll(fs afero.Fs, paths []string) map[string]State {
	states := make(map[string]State, len(paths))
	for _, path := range paths {
		states[path] = NewDirectory(fs, path)
	}
	return states
}

// MkParentDirs ensures the ancestors of path exist, creating them when
// needed. The entry at path itself is not created.
func MkParentDirs(fs afero.Fs, path string) error {
	parent := filepath.Dir(path)
	if exists(fs, parent) {
		return nil
	}
	return fs.MkdirAll(parent, 0o755)
}

func exists(fs afero.Fs, path string) bool {
	_, err := fs.Stat(path)
	return err == nil
}
