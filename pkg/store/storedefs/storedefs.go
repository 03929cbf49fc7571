// Package storedefs contains definitions of the store API.
//
// It is a separate package so that packages that only depend on the store API
// does not need to depend on the concrete implementation.
package storedefs

import "errors"

// ErrNoSymbol is returned when a symbol to query or delete does not exist.
var ErrNoSymbol = errors.New("no such symbol")

// ErrNoEntry is returned when a history entry to query does not exist.
var ErrNoEntry = errors.New("no such history entry")

// Store is an interface satisfied by the storage service.
type Store interface {
	AddSymbol(s Symbol) error
	DelSymbol(name string) error
	Symbol(name string) (Symbol, error)
	Symbols() ([]Symbol, error)

	NextEntrySeq() (int, error)
	AddEntry(text string) (int, error)
	DelEntry(seq int) error
	Entry(seq int) (string, error)
	Entries(from, upto int) ([]Entry, error)
}

// Symbol is a user-defined symbol. Its output is substituted for its name in
// the input.
type Symbol struct {
	Name        string `yaml:"name"`
	Output      string `yaml:"output"`
	TeX         string `yaml:"tex,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// Entry is an entry in the conversion history.
type Entry struct {
	Text string
	Seq  int
}
