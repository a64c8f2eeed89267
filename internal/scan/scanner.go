package scan

import (
	"fmt"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gobwas/glob"
	"github.com/k1LoW/duration"
	"github.com/samber/lo"
)

// File is an immutable descriptor for one scanned file. Descriptors are
// produced fresh on every scan and never mutated.
type File struct {
	Path       string
	Name       string
	Size       int64
	AccessedAt time.Time
	ModifiedAt time.Time
	AgeDays    int
	Bucket     Bucket
}

// BucketSummary aggregates one bucket for display.
type BucketSummary struct {
	Files      int
	TotalBytes int64
}

// Options configures a Scanner. All fields are optional.
type Options struct {
	// Extensions restricts the scan to the given extensions when
	// non-empty. Entries are matched case-insensitively and may be
	// given with or without the leading dot.
	Extensions []string

	// ExcludeFiles drops files whose base name matches exactly.
	ExcludeFiles []string

	// ExcludeGlobs drops files whose base name matches any pattern
	// (gobwas/glob syntax).
	ExcludeGlobs []string

	// ProtectAccessedWithin keeps files whose access time falls inside
	// the given period (e.g. "1w") out of the results. Empty disables
	// the protection.
	ProtectAccessedWithin string

	// Clock defaults to time.Now.
	Clock func() time.Time
}

// Scanner walks directory trees and produces file descriptors with
// derived ages. Age comes from the modification time, not the access
// time, since access times are routinely touched by indexers and
// thumbnailers and would keep stale files looking fresh.
type Scanner struct {
	extensions    map[string]struct{}
	excludeFiles  []string
	excludeGlobs  []glob.Glob
	protectWindow time.Duration
	now           func() time.Time
}

// New builds a Scanner from the given options.
func New(opts Options) (*Scanner, error) {
	s := &Scanner{
		excludeFiles: opts.ExcludeFiles,
		now:          opts.Clock,
	}
	if s.now == nil {
		s.now = time.Now
	}

	if len(opts.Extensions) > 0 {
		s.extensions = make(map[string]struct{}, len(opts.Extensions))
		for _, ext := range opts.Extensions {
			ext = strings.ToLower(strings.TrimSpace(ext))
			if ext == "" {
				continue
			}
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			s.extensions[ext] = struct{}{}
		}
	}

	for _, pattern := range opts.ExcludeGlobs {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		s.excludeGlobs = append(s.excludeGlobs, g)
	}

	if opts.ProtectAccessedWithin != "" {
		d, err := duration.Parse(opts.ProtectAccessedWithin)
		if err != nil {
			return nil, fmt.Errorf("invalid protect period %q: %w", opts.ProtectAccessedWithin, err)
		}
		s.protectWindow = d
	}

	return s, nil
}

// Scan walks dir recursively and returns a descriptor for every regular
// file that passes the configured filters. Files that cannot be stat'ed
// are skipped; unreadable subdirectories are skipped with a debug log.
// The directory itself must exist and be a directory.
func (s *Scanner) Scan(dir string) ([]File, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("folder not found: %s", dir)
		}
		return nil, fmt.Errorf("cannot access folder %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", dir)
	}

	now := s.now()
	var files []File

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			slog.Debug("skipping unreadable entry", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if s.excluded(d.Name()) {
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			// File vanished or turned unreadable between the walk
			// and the stat. Not our problem, keep going.
			slog.Debug("skipping file", "path", path, "error", err)
			return nil
		}

		accessed := atime(fi)
		if s.protectWindow > 0 && now.Sub(accessed) < s.protectWindow {
			return nil
		}

		ageDays := int(math.Floor(now.Sub(fi.ModTime()).Hours() / 24))
		files = append(files, File{
			Path:       path,
			Name:       d.Name(),
			Size:       fi.Size(),
			AccessedAt: accessed,
			ModifiedAt: fi.ModTime(),
			AgeDays:    ageDays,
			Bucket:     BucketFor(ageDays),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("permission denied accessing: %s: %w", dir, err)
	}

	return files, nil
}

func (s *Scanner) excluded(name string) bool {
	if s.extensions != nil {
		if _, ok := s.extensions[strings.ToLower(filepath.Ext(name))]; !ok {
			return true
		}
	}
	for _, exclude := range s.excludeFiles {
		if name == exclude {
			return true
		}
	}
	for _, g := range s.excludeGlobs {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// Categorize groups files by age bucket.
func Categorize(files []File) map[Bucket][]File {
	return lo.GroupBy(files, func(f File) Bucket { return f.Bucket })
}

// Summarize computes per-bucket counts and byte totals. Every bucket is
// present in the result even when empty.
func Summarize(files []File) map[Bucket]BucketSummary {
	summary := make(map[Bucket]BucketSummary, 4)
	for _, b := range Buckets() {
		summary[b] = BucketSummary{}
	}
	for b, group := range Categorize(files) {
		summary[b] = BucketSummary{
			Files:      len(group),
			TotalBytes: lo.SumBy(group, func(f File) int64 { return f.Size }),
		}
	}
	return summary
}

// FilterOld returns the files at least minAgeDays old. This mirrors the
// eligibility rule the archive engine applies, for preview output.
func FilterOld(files []File, minAgeDays int) []File {
	return lo.Filter(files, func(f File, _ int) bool {
		return f.AgeDays >= minAgeDays
	})
}
