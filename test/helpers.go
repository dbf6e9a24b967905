// Package test contains helpers shared by tests across packages.
package test

import (
	"os"
	"path/filepath"
	"testing"
)

// TmpFile returns the path for a temporary sqlite database that is
// cleaned up when the test finishes.
func TmpFile(t *testing.T) string {
	d, err := os.MkdirTemp("", "bankwatch-test")
	if err != nil {
		t.Fatalf("could not create temporary directory: %v", err)
	}

	t.Cleanup(func() {
		os.RemoveAll(d)
	})

	return filepath.Join(d, "gorm.db")
}
