// Package storetest keeps test suites against storedefs.Store.
package storetest

import (
	"errors"
	"testing"

	"amath.elv.sh/pkg/store/storedefs"
	"github.com/google/go-cmp/cmp"
)

var symbols = []storedefs.Symbol{
	{Name: "R2", Output: "RR^2", Description: "the plane"},
	{Name: "eps", Output: "epsilon", TeX: "varepsilon"},
	{Name: "dd", Output: "ⅆ"},
}

// TestSymbols tests the symbol functionality of a Store.
func TestSymbols(t *testing.T, s storedefs.Store) {
	t.Helper()

	if _, err := s.Symbol("R2"); !errors.Is(err, storedefs.ErrNoSymbol) {
		t.Errorf("Symbol(R2) -> error %v, want ErrNoSymbol", err)
	}
	for _, sym := range symbols {
		if err := s.AddSymbol(sym); err != nil {
			t.Errorf("AddSymbol(%v) -> error %v", sym, err)
		}
	}

	got, err := s.Symbol("eps")
	if err != nil || got != symbols[1] {
		t.Errorf("Symbol(eps) -> (%v, %v), want (%v, nil)", got, err, symbols[1])
	}

	all, err := s.Symbols()
	want := []storedefs.Symbol{symbols[0], symbols[2], symbols[1]}
	if err != nil {
		t.Errorf("Symbols() -> error %v", err)
	}
	if diff := cmp.Diff(want, all); diff != "" {
		t.Errorf("Symbols() (-want +got):\n%s", diff)
	}

	replaced := storedefs.Symbol{Name: "R2", Output: "RR xx RR"}
	if err := s.AddSymbol(replaced); err != nil {
		t.Errorf("AddSymbol(%v) -> error %v", replaced, err)
	}
	if got, _ := s.Symbol("R2"); got != replaced {
		t.Errorf("Symbol(R2) -> %v after replacing, want %v", got, replaced)
	}

	if err := s.DelSymbol("R2"); err != nil {
		t.Errorf("DelSymbol(R2) -> error %v", err)
	}
	if err := s.DelSymbol("R2"); !errors.Is(err, storedefs.ErrNoSymbol) {
		t.Errorf("DelSymbol(R2) again -> error %v, want ErrNoSymbol", err)
	}
	if _, err := s.Symbol("R2"); !errors.Is(err, storedefs.ErrNoSymbol) {
		t.Errorf("Symbol(R2) after deleting -> error %v, want ErrNoSymbol", err)
	}
}

var entries = []string{"x^2", "sqrt(x)", "sum_(i=1)^n i", "a/b"}

// TestHistory tests the conversion history functionality of a Store.
func TestHistory(t *testing.T, s storedefs.Store) {
	t.Helper()

	startSeq, err := s.NextEntrySeq()
	if startSeq != 1 || err != nil {
		t.Errorf("NextEntrySeq() -> (%v, %v), want (1, nil)", startSeq, err)
	}
	for i, text := range entries {
		seq, err := s.AddEntry(text)
		if seq != startSeq+i || err != nil {
			t.Errorf("AddEntry(%q) -> (%v, %v), want (%v, nil)", text, seq, err, startSeq+i)
		}
	}
	endSeq, err := s.NextEntrySeq()
	if wantEndSeq := startSeq + len(entries); endSeq != wantEndSeq || err != nil {
		t.Errorf("NextEntrySeq() -> (%v, %v), want (%v, nil)", endSeq, err, wantEndSeq)
	}

	for i, want := range entries {
		seq := startSeq + i
		text, err := s.Entry(seq)
		if text != want || err != nil {
			t.Errorf("Entry(%v) -> (%q, %v), want (%q, nil)", seq, text, err, want)
		}
	}

	got, err := s.Entries(startSeq+1, startSeq+3)
	want := []storedefs.Entry{
		{Text: entries[1], Seq: startSeq + 1},
		{Text: entries[2], Seq: startSeq + 2},
	}
	if err != nil {
		t.Errorf("Entries -> error %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Entries (-want +got):\n%s", diff)
	}

	if err := s.DelEntry(startSeq); err != nil {
		t.Errorf("DelEntry(%v) -> error %v", startSeq, err)
	}
	if _, err := s.Entry(startSeq); !errors.Is(err, storedefs.ErrNoEntry) {
		t.Errorf("Entry(%v) after deleting -> error %v, want ErrNoEntry", startSeq, err)
	}
	if seq, _ := s.NextEntrySeq(); seq != endSeq {
		t.Errorf("NextEntrySeq() -> %v after deleting, want %v", seq, endSeq)
	}
}
