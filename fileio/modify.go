package fileio

import "github.com/spf13/afero"

// LineModifier rewrites a single line; i is the zero-based line index.
type LineModifier func(i int, line string) string

// ModifyLines reads src line by line, applies fn to each line, and writes
// the result to dst. src and dst may be the same path.
func ModifyLines(fs afero.Fs, src, dst string, fn LineModifier) error {
	lines, err := ReadLines(fs, src)
	if err != nil {
		return err
	}
	for i, line := range lines {
		lines[i] = fn(i, line)
	}
	return WriteLines(fs, dst, lines)
}
