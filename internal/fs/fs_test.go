package fs

import (
	"os"
	"path/filepath"
	"testing"
)

// createTestFile creates a test file with given content
func createTestFile(t *testing.T, path, content string) {
	t.Helper()
	err := os.WriteFile(path, []byte(content), 0644)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
}

func TestMove(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "source.txt")
	dstPath := filepath.Join(dir, "destination.txt")
	content := "test content"

	// Create source file
	createTestFile(t, srcPath, content)

	// Test successful move
	err := Move(srcPath, dstPath, false)
	if err != nil {
		t.Fatalf("Failed to move file: %v", err)
	}

	// Verify source file is gone
	_, err = os.Stat(srcPath)
	if !os.IsNotExist(err) {
		t.Fatal("Source file should not exist after move")
	}

	// Verify destination file exists with correct content
	dstContent, err := os.ReadFile(dstPath)
	if err != nil {
		t.Fatalf("Failed to read destination file: %v", err)
	}
	if string(dstContent) != content {
		t.Fatalf("Destination file content mismatch. Expected %q, got %q", content, dstContent)
	}

	// Test move with fallback copy enabled
	srcPath = filepath.Join(dir, "source2.txt")
	dstPath = filepath.Join(dir, "destination2.txt")
	createTestFile(t, srcPath, content)

	err = Move(srcPath, dstPath, true)
	if err != nil {
		t.Fatalf("Failed to move file with fallback copy: %v", err)
	}

	// Verify source file is gone
	_, err = os.Stat(srcPath)
	if !os.IsNotExist(err) {
		t.Fatal("Source file should not exist after move")
	}

	// Verify destination file exists with correct content
	dstContent, err = os.ReadFile(dstPath)
	if err != nil {
		t.Fatalf("Failed to read destination file: %v", err)
	}
	if string(dstContent) != content {
		t.Fatalf("Destination file content mismatch. Expected %q, got %q", content, dstContent)
	}
}

func TestMoveCreatesDestinationDir(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "source.txt")
	dstPath := filepath.Join(dir, "nested", "deeper", "destination.txt")

	createTestFile(t, srcPath, "content")

	if err := Move(srcPath, dstPath, false); err != nil {
		t.Fatalf("Failed to move into missing directory: %v", err)
	}

	if _, err := os.Stat(dstPath); err != nil {
		t.Fatalf("Destination file missing: %v", err)
	}
}

func TestDirSize(t *testing.T) {
	dir := t.TempDir()

	createTestFile(t, filepath.Join(dir, "a.txt"), "12345")
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}
	createTestFile(t, filepath.Join(dir, "sub", "b.txt"), "1234567890")

	size, err := DirSize(dir)
	if err != nil {
		t.Fatalf("DirSize failed: %v", err)
	}
	if size != 15 {
		t.Errorf("DirSize = %d, want 15", size)
	}

	// Single file
	size, err = DirSize(filepath.Join(dir, "a.txt"))
	if err != nil {
		t.Fatalf("DirSize on file failed: %v", err)
	}
	if size != 5 {
		t.Errorf("DirSize on file = %d, want 5", size)
	}
}

func TestIsEmptyDir(t *testing.T) {
	dir := t.TempDir()

	empty, err := IsEmptyDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !empty {
		t.Error("expected fresh temp dir to be empty")
	}

	createTestFile(t, filepath.Join(dir, "x.txt"), "x")
	empty, err = IsEmptyDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if empty {
		t.Error("expected dir with a file to be non-empty")
	}
}

func TestIsUnsafePath(t *testing.T) {
	testCases := []struct {
		name string
		path string
		want bool
	}{
		{name: "root", path: "/", want: true},
		{name: "dot", path: ".", want: true},
		{name: "dotdot", path: "..", want: true},
		{name: "dot with slash", path: "./", want: true},
		{name: "multiple dots", path: "./.", want: true},
		{name: "path climbing to root", path: "./../../foo/../..", want: true},
		{name: "double slash", path: "//", want: true},
		{name: "double slash prefix", path: "//tmp", want: true},
		{name: "normal absolute", path: "/home/user/Downloads", want: false},
		{name: "normal relative", path: "Downloads", want: false},
		{name: "nested relative", path: "Downloads/old", want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := IsUnsafePath(tc.path)
			if err != nil {
				t.Fatalf("IsUnsafePath(%q) error: %v", tc.path, err)
			}
			if got != tc.want {
				t.Errorf("IsUnsafePath(%q) = %v, want %v", tc.path, got, tc.want)
			}
		})
	}
}
