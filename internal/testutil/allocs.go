// Package testutil contains helpers shared by this module's test files.
package testutil

import "testing"

// ShouldNotAllocate fails t if f allocates, skipping under -short since the
// allocation count testing.AllocsPerRun reports is noisy in that mode.
func ShouldNotAllocate(t *testing.T, f func()) {
	if testing.Short() {
		t.Skip("skip allocation check in -short mode")
		return
	}
	if a := testing.AllocsPerRun(10, f); a > 0 {
		t.Errorf("allocations detected: %f", a)
	}
}
