// Package testutil holds fixture and golden file helpers shared by tests.
//
// Run tests with -update to rewrite golden files from the current output.
package testutil

import (
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

var update = flag.Bool("update", false, "update golden files")

// LoadFixture returns the contents of a testdata file, failing the test if it
// cannot be read.
func LoadFixture(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read fixture %s: %v", path, err)
	}
	return string(content)
}

// CompareGolden checks actual against the text stored at goldenPath.
func CompareGolden(t *testing.T, goldenPath string, actual string) {
	t.Helper()

	if *update {
		writeGolden(t, goldenPath, []byte(actual))
		return
	}

	if expected := LoadFixture(t, goldenPath); actual != expected {
		t.Errorf("Golden file mismatch for %s\nExpected:\n%s\nActual:\n%s", goldenPath, expected, actual)
	}
}

// CompareGoldenSlice checks actual against a JSON array of strings stored at
// goldenPath. Order matters.
func CompareGoldenSlice(t *testing.T, goldenPath string, actual []string) {
	t.Helper()

	if *update {
		data, err := json.MarshalIndent(actual, "", "  ")
		if err != nil {
			t.Fatalf("Failed to marshal slice to JSON: %v", err)
		}
		writeGolden(t, goldenPath, append(data, '\n'))
		return
	}

	var expected []string
	if err := json.Unmarshal([]byte(LoadFixture(t, goldenPath)), &expected); err != nil {
		t.Fatalf("Failed to parse JSON from golden file %s: %v", goldenPath, err)
	}

	if !slices.Equal(actual, expected) {
		t.Errorf("Golden file mismatch for %s\nExpected: %v\nActual: %v", goldenPath, expected, actual)
	}
}

func writeGolden(t *testing.T, goldenPath string, data []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(goldenPath), 0o755); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", goldenPath, err)
	}
	if err := os.WriteFile(goldenPath, data, 0o644); err != nil {
		t.Fatalf("Failed to update golden file %s: %v", goldenPath, err)
	}
	t.Logf("Updated golden file: %s", goldenPath)
}
