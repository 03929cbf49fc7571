package store

import (
	"fmt"
	"os"
	"path/filepath"

	"amath.elv.sh/pkg/testutil"
)

// MustTempStore returns a Store backed by a temporary file, which is closed
// and removed when the test finishes. It panics if the Store cannot be
// created.
func MustTempStore(c testutil.Cleanuper) DBStore {
	dir := testutil.TempDir(c)
	st, err := NewStore(filepath.Join(dir, "db"))
	if err != nil {
		panic(fmt.Sprintf("Failed to create Store instance: %v", err))
	}
	c.Cleanup(func() {
		if err := st.Close(); err != nil {
			fmt.Fprintln(os.Stderr, "failed to close temp store:", err)
		}
	})
	return st
}
