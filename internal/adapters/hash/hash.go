// Package hash fingerprints video files for cache keying. The fingerprint
// covers the first 256 KiB plus name, size, and mtime - a cheap proxy for
// "same video" that avoids reading multi-gigabyte files whole.
package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const sampleSize = 256 * 1024

// ContentHash returns the hex-encoded fingerprint of the file at path.
func ContentHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open video: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat video: %w", err)
	}

	h := sha256.New()
	if _, err := io.CopyN(h, f, sampleSize); err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read video: %w", err)
	}
	fmt.Fprintf(h, "%s|%d|%d", filepath.Base(path), info.Size(), info.ModTime().UnixNano())

	return hex.EncodeToString(h.Sum(nil)), nil
}
