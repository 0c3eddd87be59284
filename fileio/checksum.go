package fileio

import (
	"encoding/hex"

	"github.com/spf13/afero"
	"github.com/zeebo/xxh3"
)

// Checksum returns the xxh3-128 hash of the file content at path, hex
// encoded.
func Checksum(fs afero.Fs, path string) (string, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return "", err
	}
	sum := xxh3.Hash128(data).Bytes()
	return hex.EncodeToString(sum[:]), nil
}
