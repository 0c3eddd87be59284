package fileio

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/avendal/filekit/internal/util"
)

var log = util.GetLogger("fileio")

// WriteBytes writes data to the file at path, replacing any existing
// content.
func WriteBytes(fs afero.Fs, path string, data []byte) error {
	return afero.WriteFile(fs, path, data, 0o644)
}

// WriteString writes s to the file at path, replacing any existing
// content.
func WriteString(fs afero.Fs, path, s string) error {
	return WriteBytes(fs, path, []byte(s))
}

// WriteLines writes the lines to the file at path, each terminated with a
// newline.
func WriteLines(fs afero.Fs, path string, lines []string) error {
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return WriteString(fs, path, sb.String())
}

// WriteBytesQuietly is WriteBytes for callers that accept best-effort
// semantics: the failure is logged with its cause and reported as false.
func WriteBytesQuietly(fs afero.Fs, path string, data []byte) bool {
	if err := WriteBytes(fs, path, data); err != nil {
		log.Error().Err(err).Str("path", path).Msg("Quiet write failed")
		return false
	}
	return true
}

// WriteStringQuietly is the quiet variant of WriteString.
func WriteStringQuietly(fs afero.Fs, path, s string) bool {
	return WriteBytesQuietly(fs, path, []byte(s))
}

// WriteBytesAtomic writes data to a uniquely named temporary file in the
// destination directory and renames it into place, so readers never see a
// partial file.
func WriteBytesAtomic(fs afero.Fs, path string, data []byte) error {
	tmp := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")
	if err := afero.WriteFile(fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := fs.Rename(tmp, path); err != nil {
		// Best effort; the rename failure is the error that matters.
		_ = fs.Remove(tmp)
		return fmt.Errorf("renaming %s: %w", tmp, err)
	}
	return nil
}

// CopyContents reads the file at src and writes its content to dst,
// replacing whatever dst held.
func CopyContents(fs afero.Fs, src, dst string) error {
	data, err := afero.ReadFile(fs, src)
	if err != nil {
		return err
	}
	return WriteBytes(fs, dst, data)
}
