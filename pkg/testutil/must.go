package testutil

import (
	"io"
	"os"
	"path/filepath"
)

// MustPipe calls os.Pipe and panics if it fails.
func MustPipe() (*os.File, *os.File) {
	r, w, err := os.Pipe()
	if err != nil {
		panic(err)
	}
	return r, w
}

// MustReadAllAndClose reads everything from r, closes it, and panics if
// reading fails.
func MustReadAllAndClose(r io.ReadCloser) string {
	bs, err := io.ReadAll(r)
	if err != nil {
		panic(err)
	}
	r.Close()
	return string(bs)
}

// MustWriteFile writes content to the named file, creating parent directories
// as needed. It panics if any step fails.
func MustWriteFile(name, content string) {
	if err := os.MkdirAll(filepath.Dir(name), 0700); err != nil {
		panic(err)
	}
	if err := os.WriteFile(name, []byte(content), 0600); err != nil {
		panic(err)
	}
}

// MustChdir calls os.Chdir and panics if it fails.
func MustChdir(dir string) {
	if err := os.Chdir(dir); err != nil {
		panic(err)
	}
}
