// Package testkit holds small helpers shared by package tests
package testkit

import (
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// MustPanic fails the test unless fn panics
func MustPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	fn()
}

// MustContain fails the test unless s contains sub
func MustContain(t *testing.T, s, sub string) {
	t.Helper()
	if !strings.Contains(s, sub) {
		t.Fatalf("expected %q in:\n%s", sub, s)
	}
}

// MustNotContain fails the test if s contains sub
func MustNotContain(t *testing.T, s, sub string) {
	t.Helper()
	if strings.Contains(s, sub) {
		t.Fatalf("did not expect %q in:\n%s", sub, s)
	}
}

// TempDB returns a fresh sqlite file path inside the test's temp dir
func TempDB(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "convertis.db")
}

var seamMu sync.Mutex

// Swap replaces a package-level seam for the duration of the test
func Swap[T any](t *testing.T, target *T, replacement T) {
	t.Helper()
	orig := *target
	*target = replacement
	t.Cleanup(func() { *target = orig })
}

// Serial holds a global lock until the test ends; use it around Swap
func Serial(t *testing.T) {
	t.Helper()
	seamMu.Lock()
	t.Cleanup(seamMu.Unlock)
}
