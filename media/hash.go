package media

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// FileSHA256 streams the file through SHA-256 and returns the hex digest.
// The hash is the dedup/integrity signal stored on each photo row.
func FileSHA256(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("hash: failed to open file %s: %w", filePath, err)
	}
	defer file.Close()

	h := sha256.New()
	if _, err := io.Copy(h, file); err != nil {
		return "", fmt.Errorf("hash: failed to read file %s: %w", filePath, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
