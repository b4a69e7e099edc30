package filesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureDirectoryExists(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		name     string
		filePath string
		wantDir  string
	}{
		{
			name:     "current directory",
			filePath: "rss.xml",
			wantDir:  ".",
		},
		{
			name:     "single directory",
			filePath: filepath.Join(tempDir, "public", "rss.xml"),
			wantDir:  filepath.Join(tempDir, "public"),
		},
		{
			name:     "nested directories",
			filePath: filepath.Join(tempDir, "site", "feeds", "es", "rss.xml"),
			wantDir:  filepath.Join(tempDir, "site", "feeds", "es"),
		},
		{
			name:     "directory already exists",
			filePath: filepath.Join(tempDir, "rss.xml"),
			wantDir:  tempDir,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := EnsureDirectoryExists(tt.filePath); err != nil {
				t.Fatalf("EnsureDirectoryExists(%q) error = %v", tt.filePath, err)
			}

			info, err := os.Stat(tt.wantDir)
			if err != nil {
				t.Fatalf("Expected directory %q was not created: %v", tt.wantDir, err)
			}
			if !info.IsDir() {
				t.Errorf("%q is not a directory", tt.wantDir)
			}
		})
	}
}

func TestEnsureDirectoryExists_FilePermissions(t *testing.T) {
	testPath := filepath.Join(t.TempDir(), "testdir", "file.txt")

	if err := EnsureDirectoryExists(testPath); err != nil {
		t.Fatalf("EnsureDirectoryExists() error = %v", err)
	}

	info, err := os.Stat(filepath.Dir(testPath))
	if err != nil {
		t.Fatalf("Failed to stat created directory: %v", err)
	}

	// umask can only remove bits
	if perm := info.Mode().Perm(); perm&^os.FileMode(0o755) != 0 {
		t.Errorf("Directory permissions = %o, expected at most %o", perm, 0o755)
	}
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rss.xml")

	if err := WriteFileAtomic(path, []byte("first"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic() error = %v", err)
	}

	if err := WriteFileAtomic(path, []byte("second run"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic() overwrite error = %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read written file: %v", err)
	}

	if string(content) != "second run" {
		t.Errorf("file content = %q, expected %q", string(content), "second run")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to list dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the target file in %s, found %d entries", dir, len(entries))
	}
}

func TestWriteFileAtomic_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "rss.xml")

	if err := WriteFileAtomic(path, []byte("x"), 0o644); err == nil {
		t.Error("WriteFileAtomic() expected error when the directory does not exist")
	}
}

func TestGetDefaultPath(t *testing.T) {
	path, err := GetDefaultPath("config.yaml")
	if err != nil {
		t.Fatalf("GetDefaultPath() error = %v", err)
	}

	if filepath.Base(path) != "config.yaml" {
		t.Errorf("GetDefaultPath() = %q, expected it to end in config.yaml", path)
	}

	if !filepath.IsAbs(path) {
		t.Errorf("GetDefaultPath() = %q, expected an absolute path", path)
	}
}
