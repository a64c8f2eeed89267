package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Layout maps archived files into month-stamped folders under the
// archive root. Folder names follow the YYYY-MM of the time the
// archive run starts, not of the files being moved.
type Layout struct {
	root string
	now  func() time.Time
}

// NewLayout creates a Layout rooted at root. If clock is nil the
// system clock is used.
func NewLayout(root string, clock func() time.Time) *Layout {
	if clock == nil {
		clock = time.Now
	}
	return &Layout{
		root: root,
		now:  clock,
	}
}

// Root returns the archive root directory.
func (l *Layout) Root() string {
	return l.root
}

// MonthDir returns the destination folder for the current month,
// e.g. <root>/2025-06. The folder is not created.
func (l *Layout) MonthDir() string {
	return filepath.Join(l.root, l.now().Format("2006-01"))
}

// Resolve returns a destination path for name inside the current
// month folder, appending _1, _2, ... before the extension until an
// unused name is found. It checks the live filesystem so repeated
// runs never overwrite a previously archived file.
func (l *Layout) Resolve(name string) (string, error) {
	dir := l.MonthDir()

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	if stem == "" {
		// Hidden files like ".env" keep the whole name as the stem
		stem, ext = name, ""
	}

	candidate := name
	counter := 1

	for {
		dest := filepath.Join(dir, candidate)

		// Check if name is already taken
		_, err := os.Stat(dest)
		if os.IsNotExist(err) {
			return dest, nil
		}
		if err != nil {
			return "", NewError("resolve", dest, err)
		}

		// Generate new name with counter
		candidate = fmt.Sprintf("%s_%d%s", stem, counter, ext)
		counter++
	}
}
