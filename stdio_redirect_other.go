//go:build !unix

package main

import (
	"os"
	"path/filepath"
)

// Runtime panics still go to the original stderr here; only Go-level
// writes through os.Stdout and os.Stderr are captured.
func redirectStdIO(path string) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	os.Stdout = f
	os.Stderr = f
	return nil
}
