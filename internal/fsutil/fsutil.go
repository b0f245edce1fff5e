// Package fsutil provides the directory scan and file copy primitives.
package fsutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
)

// ScanDir returns the absolute paths of the regular files directly
// inside dir whose extension equals ext exactly (case-sensitive,
// including the leading dot). Subdirectories are not descended into.
// The result is sorted so repeated runs see the same order on every
// platform; no matching files is an empty result, not an error.
func ScanDir(dir, ext string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if filepath.Ext(entry.Name()) != ext {
			continue
		}
		absPath, err := filepath.Abs(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to resolve path %s: %w", entry.Name(), err)
		}
		files = append(files, absPath)
	}

	sort.Strings(files)
	return files, nil
}

// CopyContents replaces the contents of dst with the full contents of
// src, truncating whatever was there before. There is no atomic-rename
// step and no rollback; a failure part way through leaves dst as the
// underlying writes left it.
func CopyContents(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to open destination file: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close destination file %s: %w", dst, err)
	}
	return nil
}

// IsRegularFile reports whether path exists and is a regular file.
func IsRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
