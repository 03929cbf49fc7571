package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"amath.elv.sh/pkg/store"
	"amath.elv.sh/pkg/store/storetest"
	"amath.elv.sh/pkg/testutil"
)

func TestSymbols(t *testing.T) {
	storetest.TestSymbols(t, store.MustTempStore(t))
}

func TestHistory(t *testing.T) {
	storetest.TestHistory(t, store.MustTempStore(t))
}

func TestNewStore_Reopen(t *testing.T) {
	path := filepath.Join(testutil.TempDir(t), "db")
	st, err := store.NewStore(path)
	if err != nil {
		t.Fatal(err)
	}
	st.AddEntry("x^2")
	st.Close()

	st, err = store.NewStore(path)
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()
	if text, err := st.Entry(1); text != "x^2" || err != nil {
		t.Errorf("Entry(1) -> (%q, %v) after reopening, want (\"x^2\", nil)", text, err)
	}
}

func TestNewStore_BadPath(t *testing.T) {
	dir := testutil.TempDir(t)
	// A directory cannot be opened as a database.
	if err := os.Mkdir(filepath.Join(dir, "db"), 0755); err != nil {
		t.Fatal(err)
	}
	if _, err := store.NewStore(filepath.Join(dir, "db")); err == nil {
		t.Errorf("NewStore on a directory returns nil error")
	}
}
