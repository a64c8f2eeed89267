package archive

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Info describes the archive tree on disk.
type Info struct {
	Exists     bool
	Path       string
	Files      int64
	Folders    int64
	TotalBytes int64
}

// Info walks the archive root and reports how many folders and files it
// holds and their total size. Top-level entries are walked
// concurrently. Entries that vanish mid-walk or cannot be read are
// skipped rather than failing the whole report.
func (a *Archiver) Info() (*Info, error) {
	root := a.layout.Root()

	if _, err := os.Stat(root); err != nil {
		if os.IsNotExist(err) {
			return &Info{Path: root}, nil
		}
		return nil, NewError("info", root, err)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, NewError("info", root, err)
	}

	var files, folders, size atomic.Int64
	var eg errgroup.Group

	for _, entry := range entries {
		path := filepath.Join(root, entry.Name())
		eg.Go(func() error {
			return filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
				if err != nil {
					if os.IsNotExist(err) || errors.Is(err, fs.ErrPermission) {
						return nil
					}
					return err
				}
				if d.IsDir() {
					folders.Add(1)
					return nil
				}
				files.Add(1)
				if fi, err := d.Info(); err == nil {
					size.Add(fi.Size())
				}
				return nil
			})
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, NewError("info", root, err)
	}

	return &Info{
		Exists:     true,
		Path:       root,
		Files:      files.Load(),
		Folders:    folders.Load(),
		TotalBytes: size.Load(),
	}, nil
}
