package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// FileSHA256 returns the hex-encoded sha256 digest of a file's contents.
// The downloader logs it as a fingerprint of fetched sample audio, so a
// corrupted or replaced asset is visible across runs.
func FileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s failed: %w", path, err)
	}
	defer f.Close()

	digest := sha256.New()
	if _, err := io.Copy(digest, f); err != nil {
		return "", fmt.Errorf("read %s failed: %w", path, err)
	}
	return hex.EncodeToString(digest.Sum(nil)), nil
}
