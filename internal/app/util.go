package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

var ErrNoContent = errors.New("no content to encode")

func NowRFC3339() string { return time.Now().UTC().Format(time.RFC3339) }

func EnsureDir(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// AtomicWriteFile writes data next to path and renames it into place.
func AtomicWriteFile(path string, perm os.FileMode, data []byte) error {
	dir := filepath.Dir(path)
	if err := EnsureDir(dir, 0755); err != nil {
		return err
	}
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.tmp.%d", filepath.Base(path), time.Now().UnixNano()))
	if err := os.WriteFile(tmp, data, perm); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
