package util

import (
	"errors"
	"os"
	"path/filepath"
)

func Exists(filename string) bool {
	_, err := os.Stat(filename)
	return !errors.Is(err, os.ErrNotExist)
}

func IsFile(path string) bool {
	s, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !s.IsDir()
}

// AbsPath tries to get the absolute path. If it fails, it falls back to
// the relative path.
func AbsPath(relpath string) string {
	path, err := filepath.Abs(relpath)
	if err != nil {
		return relpath
	}
	return path
}
