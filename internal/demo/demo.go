// Package demo seeds a playground directory tree with files of known
// ages, so the archive workflow can be tried without risking real data.
package demo

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// sampleContents maps extensions to file bodies so previews have
// something sensible to show.
var sampleContents = map[string]string{
	".txt":  "This is a sample text file created by the tana demo.\nIt contains placeholder text for testing purposes.",
	".md":   "# Sample Markdown\n\nThis is a **demo** file created by tana.\n\n- Item 1\n- Item 2\n- Item 3",
	".csv":  "name,age,city\nJohn,30,New York\nJane,25,Los Angeles\nBob,35,Chicago",
	".json": `{"name": "demo", "type": "tana", "version": "1.0"}`,
	".log":  "[INFO] 2024-01-01 12:00:00 - Application started\n[DEBUG] 2024-01-01 12:00:01 - Loading configuration",
	".html": "<!DOCTYPE html>\n<html>\n<head><title>Demo</title></head>\n<body><h1>tana demo</h1></body>\n</html>",
	".py":   "# Demo Python file\n\ndef hello():\n    print(\"Hello from the tana demo!\")\n\nif __name__ == \"__main__\":\n    hello()",
	".css":  "body {\n    font-family: Arial, sans-serif;\n    margin: 0;\n    padding: 20px;\n}",
	".js":   "console.log(\"tana demo JS file\");\n\nfunction demo() {\n    return \"Hello!\";\n}",
}

type demoFile struct {
	name    string
	ageDays int
}

var demoFiles = []demoFile{
	// Recent files (0-30 days)
	{"recent_notes.txt", 5},
	{"project_draft.md", 10},
	{"meeting_minutes.txt", 15},
	{"budget_2024.csv", 20},
	{"config.json", 25},

	// Medium age files (31-60 days)
	{"old_report.txt", 35},
	{"archive_data.csv", 40},
	{"backup_notes.md", 45},
	{"server_logs.log", 50},
	{"legacy_styles.css", 55},

	// Older files (61-90 days)
	{"outdated_doc.txt", 65},
	{"ancient_data.csv", 70},
	{"deprecated_script.py", 75},
	{"old_index.html", 80},
	{"vintage_notes.md", 85},

	// Very old files (90+ days)
	{"forgotten_file.txt", 100},
	{"dusty_archive.log", 120},
	{"prehistoric_data.csv", 150},
	{"ancient_code.py", 180},
	{"relic_styles.css", 200},
	{"fossil_script.js", 250},
	{"antique_page.html", 300},
}

var subfolders = []string{
	"Documents",
	"Downloads",
	"Projects",
	"Projects/Old",
	"Backup",
}

// rootFileCount is how many of demoFiles land directly in the demo
// root; the rest are spread round-robin over the subfolders.
const rootFileCount = 5

// SeedResult describes a seeded demo tree.
type SeedResult struct {
	Root    string
	Files   int
	Folders int
}

// Seed wipes dir if it exists and rebuilds the demo tree in it. File
// modification times are backdated relative to now so every age bucket
// has inhabitants. If clock is nil the system clock is used.
func Seed(dir string, clock func() time.Time) (*SeedResult, error) {
	if clock == nil {
		clock = time.Now
	}

	if _, err := os.Stat(dir); err == nil {
		slog.Debug("removing existing demo folder", "dir", dir)
		if err := os.RemoveAll(dir); err != nil {
			return nil, fmt.Errorf("failed to remove existing demo folder: %w", err)
		}
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create demo folder: %w", err)
	}

	for _, sub := range subfolders {
		if err := os.MkdirAll(filepath.Join(dir, filepath.FromSlash(sub)), 0755); err != nil {
			return nil, fmt.Errorf("failed to create demo subfolder: %w", err)
		}
	}

	result := &SeedResult{Root: dir, Folders: len(subfolders)}
	now := clock()

	for _, f := range demoFiles[:rootFileCount] {
		if err := createDemoFile(filepath.Join(dir, f.name), f.ageDays, now); err != nil {
			return nil, err
		}
		result.Files++
	}

	for i, f := range demoFiles[rootFileCount:] {
		sub := subfolders[i%len(subfolders)]
		path := filepath.Join(dir, filepath.FromSlash(sub), f.name)
		if err := createDemoFile(path, f.ageDays, now); err != nil {
			return nil, err
		}
		result.Files++
	}

	slog.Debug("seeded demo folder", "dir", dir, "files", result.Files)
	return result, nil
}

// createDemoFile writes content picked by extension and backdates both
// timestamps by ageDays.
func createDemoFile(path string, ageDays int, now time.Time) error {
	ext := strings.ToLower(filepath.Ext(path))
	content, ok := sampleContents[ext]
	if !ok {
		content = fmt.Sprintf("Demo file: %s\nCreated by tana", filepath.Base(path))
	}

	// Some size variation keeps the listing from looking uniform.
	if rand.Float64() > 0.5 {
		content = strings.Repeat(content, rand.IntN(10)+1)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write demo file: %w", err)
	}

	target := now.AddDate(0, 0, -ageDays)
	if err := os.Chtimes(path, target, target); err != nil {
		return fmt.Errorf("failed to backdate demo file: %w", err)
	}
	return nil
}
