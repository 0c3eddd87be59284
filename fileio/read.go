// Package fileio collects the byte- and line-oriented file helpers the
// toolkit's other packages compose with: read/write in both strict and
// quiet flavors, per-line modification, content checksums, and
// properties-file parsing.
package fileio

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// ReadBytes returns the full content of the file at path.
func ReadBytes(fs afero.Fs, path string) ([]byte, error) {
	return afero.ReadFile(fs, path)
}

// ReadString returns the full content of the file at path as a string.
func ReadString(fs afero.Fs, path string) (string, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ReadLines returns the lines of the file at path, without terminators.
func ReadLines(fs afero.Fs, path string) ([]string, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return lines, nil
}

// FindLineIndex returns the zero-based index of the first line in the
// file that starts with prefix, or -1 when no line does.
func FindLineIndex(fs afero.Fs, path, prefix string) (int, error) {
	f, err := fs.Open(path)
	if err != nil {
		return -1, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	index := 0
	for scanner.Scan() {
		if strings.HasPrefix(scanner.Text(), prefix) {
			return index, nil
		}
		index++
	}
	if err := scanner.Err(); err != nil {
		return -1, fmt.Errorf("reading %s: %w", path, err)
	}
	return -1, nil
}
