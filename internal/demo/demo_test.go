package demo

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tana-dev/tana/internal/scan"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func testClock() time.Time { return testNow }

func TestSeed(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "demo")

	result, err := Seed(dir, testClock)
	if err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	if result.Root != dir {
		t.Errorf("Root = %q, want %q", result.Root, dir)
	}
	if result.Files != len(demoFiles) {
		t.Errorf("Files = %d, want %d", result.Files, len(demoFiles))
	}
	if result.Folders != len(subfolders) {
		t.Errorf("Folders = %d, want %d", result.Folders, len(subfolders))
	}

	for _, sub := range subfolders {
		info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(sub)))
		if err != nil || !info.IsDir() {
			t.Errorf("subfolder %s missing: %v", sub, err)
		}
	}

	// The first files sit in the demo root.
	for _, f := range demoFiles[:rootFileCount] {
		if _, err := os.Stat(filepath.Join(dir, f.name)); err != nil {
			t.Errorf("root file %s missing: %v", f.name, err)
		}
	}

	// Round-robin placement: the sixth file lands in the first subfolder.
	if _, err := os.Stat(filepath.Join(dir, "Documents", "old_report.txt")); err != nil {
		t.Errorf("old_report.txt not in Documents: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "Projects", "Old", "server_logs.log")); err != nil {
		t.Errorf("server_logs.log not in Projects/Old: %v", err)
	}
}

func TestSeedBackdatesFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "demo")
	if _, err := Seed(dir, testClock); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(filepath.Join(dir, "recent_notes.txt"))
	if err != nil {
		t.Fatal(err)
	}

	want := testNow.AddDate(0, 0, -5)
	if got := info.ModTime(); !got.Equal(want) {
		t.Errorf("ModTime = %v, want %v", got, want)
	}
}

func TestSeedReplacesExistingTree(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "demo")
	if _, err := Seed(dir, testClock); err != nil {
		t.Fatal(err)
	}

	stray := filepath.Join(dir, "stray.bin")
	if err := os.WriteFile(stray, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Seed(dir, testClock); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(stray); !os.IsNotExist(err) {
		t.Error("stray file should be wiped by reseeding")
	}
}

func TestSeedAgesFillEveryBucket(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "demo")
	if _, err := Seed(dir, testClock); err != nil {
		t.Fatal(err)
	}

	scanner, err := scan.New(scan.Options{Clock: testClock})
	if err != nil {
		t.Fatal(err)
	}
	files, err := scanner.Scan(dir)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(files) != len(demoFiles) {
		t.Fatalf("scanned %d files, want %d", len(files), len(demoFiles))
	}

	summary := scan.Summarize(files)
	wantCounts := map[scan.Bucket]int{
		scan.BucketUnder30: 5,
		scan.BucketUnder60: 5,
		scan.BucketUnder90: 5,
		scan.BucketOver90:  8,
	}
	for bucket, want := range wantCounts {
		if got := summary[bucket].Files; got != want {
			t.Errorf("bucket %s has %d files, want %d", bucket, got, want)
		}
	}
}
