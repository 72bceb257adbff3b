package commands

import (
	"testing"

	"go.uber.org/goleak"
)

// Batch rendering fans out over goroutines; every one must be joined before a test ends.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
