// Package testutils provides shared helpers for optpp's tests.
package testutils

import (
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// TextDiff returns a human-readable diff between two multi-line strings,
// suitable for inclusion in a test failure message.
func TextDiff(expected, actual string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(expected, actual, false)
	dmp.DiffCleanupSemantic(diffs)
	return dmp.DiffPrettyText(diffs)
}

// AssertTextEqual fails the test with a readable diff when actual does not
// match expected. Plain equality asserts are hard to read for multi-line
// output like rendered help text.
func AssertTextEqual(t *testing.T, expected, actual string) {
	t.Helper()
	if expected != actual {
		t.Errorf("text mismatch (expected vs actual):\n%s", TextDiff(expected, actual))
	}
}
