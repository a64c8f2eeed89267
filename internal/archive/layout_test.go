package archive

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func testClock() time.Time { return testNow }

func TestMonthDir(t *testing.T) {
	layout := NewLayout("/archive", testClock)

	want := filepath.Join("/archive", "2025-06")
	if got := layout.MonthDir(); got != want {
		t.Errorf("MonthDir() = %q, want %q", got, want)
	}
}

func TestMonthDirZeroPadded(t *testing.T) {
	january := func() time.Time {
		return time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	}
	layout := NewLayout("/archive", january)

	want := filepath.Join("/archive", "2025-01")
	if got := layout.MonthDir(); got != want {
		t.Errorf("MonthDir() = %q, want %q", got, want)
	}
}

func TestResolve(t *testing.T) {
	root := t.TempDir()
	layout := NewLayout(root, testClock)
	monthDir := layout.MonthDir()
	if err := os.MkdirAll(monthDir, 0755); err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		name     string
		existing []string
		file     string
		want     string
	}{
		{
			name: "no collision",
			file: "report.txt",
			want: "report.txt",
		},
		{
			name:     "single collision",
			existing: []string{"report.txt"},
			file:     "report.txt",
			want:     "report_1.txt",
		},
		{
			name:     "multiple collisions",
			existing: []string{"data.csv", "data_1.csv", "data_2.csv"},
			file:     "data.csv",
			want:     "data_3.csv",
		},
		{
			name:     "first free suffix wins",
			existing: []string{"notes.md", "notes_2.md"},
			file:     "notes.md",
			want:     "notes_1.md",
		},
		{
			name:     "no extension",
			existing: []string{"Makefile"},
			file:     "Makefile",
			want:     "Makefile_1",
		},
		{
			name:     "hidden file keeps whole name as stem",
			existing: []string{".env"},
			file:     ".env",
			want:     ".env_1",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for _, name := range tc.existing {
				path := filepath.Join(monthDir, name)
				if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
					t.Fatal(err)
				}
				defer os.Remove(path)
			}

			got, err := layout.Resolve(tc.file)
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", tc.file, err)
			}
			if want := filepath.Join(monthDir, tc.want); got != want {
				t.Errorf("Resolve(%q) = %q, want %q", tc.file, got, want)
			}
		})
	}
}

func TestResolveChecksLiveFilesystem(t *testing.T) {
	root := t.TempDir()
	layout := NewLayout(root, testClock)
	monthDir := layout.MonthDir()
	if err := os.MkdirAll(monthDir, 0755); err != nil {
		t.Fatal(err)
	}

	first, err := layout.Resolve("photo.jpg")
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(first, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	// A second resolution after the first name is taken must probe past it.
	second, err := layout.Resolve("photo.jpg")
	if err != nil {
		t.Fatal(err)
	}
	if second == first {
		t.Errorf("Resolve returned the same path twice: %q", second)
	}
	if want := filepath.Join(monthDir, "photo_1.jpg"); second != want {
		t.Errorf("Resolve() = %q, want %q", second, want)
	}
}
