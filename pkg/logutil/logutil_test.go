package logutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"amath.elv.sh/pkg/testutil"
)

func TestLogger(t *testing.T) {
	logger := GetLogger("[test] ")
	var sb strings.Builder
	SetOutput(&sb)
	t.Cleanup(func() { SetOutputFile("") })

	logger.Println("hello")
	if got, want := sb.String(), "[test] hello\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// Loggers created after SetOutput also write to the new output.
	GetLogger("[later] ").Println("world")
	if !strings.Contains(sb.String(), "[later] world") {
		t.Errorf("got %q, want it to contain %q", sb.String(), "[later] world")
	}
}

func TestSetOutputFile(t *testing.T) {
	dir := testutil.TempDir(t)
	fname := filepath.Join(dir, "log")
	logger := GetLogger("[file] ")

	if err := SetOutputFile(fname); err != nil {
		t.Fatal(err)
	}
	logger.Println("to file")
	if err := SetOutputFile(""); err != nil {
		t.Fatal(err)
	}
	logger.Println("discarded")

	content, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(content), "[file] to file\n"; got != want {
		t.Errorf("log file content is %q, want %q", got, want)
	}

	if err := SetOutputFile(filepath.Join(dir, "no", "such", "dir")); err == nil {
		t.Errorf("SetOutputFile with a bad path returns nil error")
	}
}
