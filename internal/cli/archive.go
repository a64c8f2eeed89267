package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/docker/go-units"
	"github.com/fatih/color"
	"github.com/tana-dev/tana/internal/archive"
	"github.com/tana-dev/tana/internal/fs"
	"github.com/tana-dev/tana/internal/scan"
	"github.com/tana-dev/tana/internal/ui"
)

// Directories that must never be archived, no matter what the config
// allows.
var protectedPaths = []string{
	"/",
	"/home",
	"/usr",
	"/etc",
	"/var",
	"/tmp",
}

// Archive scans the given directories and moves every file at or over
// the age threshold into the current month folder of the archive root.
func (c *CLI) Archive(args []string) error {
	slog.Debug("cli.archive started")
	defer slog.Debug("cli.archive finished")

	if len(args) == 0 {
		return errors.New("too few arguments")
	}

	for _, dir := range args {
		if err := c.validateDir(dir); err != nil {
			return err
		}
	}

	files, err := c.scanDirs(args)
	if err != nil {
		return err
	}

	minAge := c.config.Core.MinAgeDays
	eligible := scan.FilterOld(files, minAge)

	if c.option.DryRun {
		c.printDryRun(files, eligible)
		return nil
	}

	if len(eligible) == 0 {
		fmt.Printf("No files older than %d days found.\n", minAge)
		return nil
	}

	if !c.option.Yes {
		prompt := fmt.Sprintf("Archive %d %s older than %d days into %s?",
			len(eligible), fileNoun(len(eligible)), minAge, c.config.Core.ArchiveRoot)
		if !ui.Confirm(prompt) {
			fmt.Println("Canceled.")
			return nil
		}
	}

	lg, err := c.openLedger()
	if err != nil {
		return err
	}
	defer lg.Close()

	result, err := c.newArchiver(lg).Archive(files)
	if err != nil {
		return err
	}

	printArchiveResult(result)

	if len(result.Errors) > 0 {
		errs := make([]error, 0, len(result.Errors))
		for _, e := range result.Errors {
			errs = append(errs, errors.New(e))
		}
		return formatErrors(errs)
	}
	return nil
}

// validateDir refuses targets whose archiving would be destructive.
// The unsafe-path check can be disabled in the config; the protected
// list cannot.
func (c *CLI) validateDir(path string) error {
	if !c.config.Core.Permissions.AllowUnsafePaths {
		unsafe, err := fs.IsUnsafePath(path)
		if err != nil {
			return err
		}
		if unsafe {
			return fmt.Errorf("refusing to archive unsafe path: %s", path)
		}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	for _, p := range protectedPaths {
		if abs == p {
			return fmt.Errorf("cannot archive protected path: %s", path)
		}
	}
	if home, err := os.UserHomeDir(); err == nil && abs == home {
		return fmt.Errorf("cannot archive home directory: %s", path)
	}
	return nil
}

func printArchiveResult(result *archive.Result) {
	green := color.New(color.FgHiGreen).SprintFunc()
	fmt.Println(green(fmt.Sprintf("Archived %d %s (%s) to %s",
		result.Moved, fileNoun(result.Moved),
		units.HumanSize(float64(result.TotalBytes)), result.MonthDir)))
	if result.Failed > 0 {
		yellow := color.New(color.FgYellow).SprintFunc()
		fmt.Println(yellow(fmt.Sprintf("Failed to archive %d %s", result.Failed, fileNoun(result.Failed))))
	}
	fmt.Printf("Batch ID: %s\n", result.BatchID)
}

func fileNoun(n int) string {
	if n == 1 {
		return "file"
	}
	return "files"
}

func formatErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	msg := fmt.Sprintf("%d errors occurred:\n", len(errs))
	for _, err := range errs {
		msg += fmt.Sprintf("  * %v\n", err)
	}
	return errors.New(msg)
}
