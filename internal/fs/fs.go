package fs

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	cp "github.com/otiai10/copy"
)

// Move moves a file or directory from src to dst, creating dst's parent
// directory first. rename(2) is tried before anything else; when it fails
// and fallbackCopy is true, the move degrades to copy and delete so that
// cross-device moves still work.
func Move(src, dst string, fallbackCopy bool) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("failed to create destination directory: %w", err)
	}

	if err := os.Rename(src, dst); err != nil {
		if !fallbackCopy {
			return fmt.Errorf("failed to move file: %w", err)
		}

		if err := cp.Copy(src, dst); err != nil {
			return fmt.Errorf("failed to copy file: %w", err)
		}

		// If copy succeeds, remove the original
		if err := os.RemoveAll(src); err != nil {
			// If we can't remove the source, try to remove the copy
			_ = os.RemoveAll(dst)
			return fmt.Errorf("failed to remove source after copy: %w", err)
		}
	}

	return nil
}

// DirSize returns the total size in bytes of the file or directory tree
// rooted at path.
func DirSize(path string) (int64, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return 0, err
	}
	if !info.IsDir() {
		return info.Size(), nil
	}

	var size int64
	err = filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			return err
		}
		size += fi.Size()
		return nil
	})
	return size, err
}

// IsEmptyDir reports whether path is a directory with no entries.
func IsEmptyDir(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return false, err
	}
	return len(entries) == 0, nil
}
