package scanner

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// writeFile creates a file of the given size, creating parent directories
// as needed.
func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, bytes.Repeat([]byte{'x'}, size), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// name returns a zero-padded read file name for fixture loops.
func name(i int) string {
	return fmt.Sprintf("read_%04d.fast5", i)
}

func mkdir(path string) error {
	return os.MkdirAll(path, 0755)
}
