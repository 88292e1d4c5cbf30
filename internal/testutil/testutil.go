// Package testutil provides shared helpers for fwaudit tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// LoadFixture reads a file from the package's testdata directory.
func LoadFixture(t *testing.T, name string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("reading fixture %s: %v", name, err)
	}
	return string(data)
}
