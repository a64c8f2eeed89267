package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/docker/go-units"
	"github.com/olekukonko/tablewriter"
	"github.com/tana-dev/tana/internal/scan"
)

// scanDirs walks every given directory with the configured filters and
// returns the combined file set.
func (c *CLI) scanDirs(dirs []string) ([]scan.File, error) {
	scanner, err := scan.New(scan.Options{
		Extensions:            c.config.Scan.Extensions,
		ExcludeFiles:          c.config.Scan.Exclude.Files,
		ExcludeGlobs:          c.config.Scan.Exclude.Globs,
		ProtectAccessedWithin: c.config.Scan.Exclude.ProtectAccessedWithin,
	})
	if err != nil {
		return nil, err
	}

	var files []scan.File
	for _, dir := range dirs {
		scanned, err := scanner.Scan(dir)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", dir, err)
		}
		files = append(files, scanned...)
	}
	return files, nil
}

// printDryRun shows the age distribution of everything scanned and
// lists the files the current threshold would move.
func (c *CLI) printDryRun(files, eligible []scan.File) {
	summary := scan.Summarize(files)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Age", "Files", "Total Size"})
	for _, b := range scan.Buckets() {
		s := summary[b]
		table.Append([]string{
			b.String(),
			strconv.Itoa(s.Files),
			units.HumanSize(float64(s.TotalBytes)),
		})
	}
	table.Render()

	minAge := c.config.Core.MinAgeDays
	if len(eligible) == 0 {
		fmt.Printf("\nNothing to archive: no files older than %d days.\n", minAge)
		return
	}

	fmt.Printf("\nWould archive %d %s older than %d days into %s:\n",
		len(eligible), fileNoun(len(eligible)), minAge, c.config.Core.ArchiveRoot)

	list := tablewriter.NewWriter(os.Stdout)
	list.SetHeader([]string{"File", "Age (days)", "Size"})
	for _, f := range eligible {
		list.Append([]string{
			f.Path,
			strconv.Itoa(f.AgeDays),
			units.HumanSize(float64(f.Size)),
		})
	}
	list.Render()
}
