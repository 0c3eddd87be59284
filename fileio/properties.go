package fileio

import (
	"bufio"
	"strings"

	"github.com/spf13/afero"
)

// ReadProperties parses a properties file at path into a key/value map.
// Lines are `key=value` with surrounding whitespace trimmed; blank lines
// and lines starting with `#` or `!` are skipped. A line without `=`
// becomes a key with an empty value.
func ReadProperties(fs afero.Fs, path string) (map[string]string, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	props := make(map[string]string)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			props[strings.TrimSpace(key)] = ""
			continue
		}
		props[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return props, nil
}
