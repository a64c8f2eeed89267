//go:build !linux && !darwin && !windows

package scan

import (
	"os"
	"time"
)

func atime(fi os.FileInfo) time.Time {
	return fi.ModTime()
}
