// Package filekit is a file-system helper toolkit: directory creation
// with outcome reporting (create), recursive file discovery with
// pattern and filter matching (search, pattern), and byte/line-oriented
// file I/O (fileio). This package is a thin entry point; the
// subpackages carry the functionality.
package filekit

import (
	"github.com/spf13/afero"

	"github.com/avendal/filekit/config"
	"github.com/avendal/filekit/search"
)

// New creates a search.Walker over the host file system.
func New() *search.Walker {
	return search.New(afero.NewOsFs())
}

// NewWithConfig creates a Walker over fs plus the walk options seeded
// from cfg (default exclusions, strictness).
func NewWithConfig(fs afero.Fs, cfg *config.Config) (*search.Walker, search.Options) {
	return search.New(fs), cfg.Options()
}
