package symbol

import (
	"sort"
	"strings"
	"sync"
)

// Table is an immutable set of symbols, indexed by name and alias.
type Table struct {
	// Symbols in definition order, one per distinct name.
	defs []*Symbol
	// Names and aliases sorted in byte order, and the symbols they refer to.
	names   []string
	symbols []*Symbol

	canonical map[string]*Symbol
	fences    map[[2]string]*Symbol
	fonts     map[string]*Symbol

	legacyOnce sync.Once
	legacy     *Table
}

// NewTable builds a table from the given symbols. When several symbols have
// the same name, the first one is kept. Each symbol is also reachable through
// its TeX alias, and through the variants of its name and TeX alias with
// everything after the first character lower-cased. Aliases never shadow a
// name.
func NewTable(defs []*Symbol) *Table {
	t := &Table{}
	index := make(map[string]*Symbol)
	for _, def := range defs {
		if def.Name == "" || index[def.Name] != nil {
			continue
		}
		index[def.Name] = def
		t.defs = append(t.defs, def)
	}
	for _, def := range t.defs {
		for _, alias := range aliases(def) {
			if index[alias] == nil {
				index[alias] = def
			}
		}
	}

	t.names = make([]string, 0, len(index))
	for name := range index {
		t.names = append(t.names, name)
	}
	sort.Strings(t.names)
	t.symbols = make([]*Symbol, len(t.names))
	for i, name := range t.names {
		t.symbols[i] = index[name]
	}

	t.buildReverseMaps()
	return t
}

func aliases(s *Symbol) []string {
	var as []string
	if lower := lowerTail(s.Name); lower != s.Name {
		as = append(as, lower)
	}
	if s.TeX != "" {
		as = append(as, s.TeX)
		if lower := lowerTail(s.TeX); lower != s.TeX {
			as = append(as, lower)
		}
	}
	return as
}

// Lower-cases everything after the first byte.
func lowerTail(s string) string {
	if s == "" {
		return s
	}
	return s[:1] + strings.ToLower(s[1:])
}

// Builds the maps from output glyphs back to symbols. Among symbols sharing an
// output, the one with the shortest name wins; on a tie, the first defined.
func (t *Table) buildReverseMaps() {
	t.canonical = make(map[string]*Symbol)
	t.fences = make(map[[2]string]*Symbol)
	t.fonts = make(map[string]*Symbol)
	shorter := func(old, s *Symbol) bool {
		return old == nil || len(s.Name) < len(old.Name)
	}
	for _, def := range t.defs {
		if def.Output != "" && def.Arity != Infix && def.Arity != Definition {
			if shorter(t.canonical[def.Output], def) {
				t.canonical[def.Output] = def
			}
		}
		switch b := def.Behavior.(type) {
		case FenceOverride:
			key := [2]string{b.Open, b.Close}
			if shorter(t.fences[key], def) {
				t.fences[key] = def
			}
		case FontRemap:
			if shorter(t.fonts[b.Value], def) {
				t.fonts[b.Value] = def
			}
		}
	}
}

// Lookup finds the symbol whose name or alias is the longest prefix of s. It
// returns the matched name and the symbol, or "" and nil if no name is a
// prefix of s.
func (t *Table) Lookup(s string) (string, *Symbol) {
	best := -1
	pos := 0
	for i := 1; i <= len(s); i++ {
		prefix := s[:i]
		pos += sort.SearchStrings(t.names[pos:], prefix)
		if pos >= len(t.names) {
			break
		}
		name := t.names[pos]
		if strings.HasPrefix(s, name) {
			best = pos
			// Skip the characters of the match.
			i = len(name)
		}
		if s < name {
			break
		}
	}
	if best == -1 {
		return "", nil
	}
	return t.names[best], t.symbols[best]
}

// Get returns the symbol with the exact name or alias, or nil.
func (t *Table) Get(name string) *Symbol {
	i := sort.SearchStrings(t.names, name)
	if i < len(t.names) && t.names[i] == name {
		return t.symbols[i]
	}
	return nil
}

// Canonical returns the preferred symbol for rendering the given output text,
// or nil. Infix and Definition symbols are never returned.
func (t *Table) Canonical(output string) *Symbol {
	return t.canonical[output]
}

// FenceName returns the preferred FenceOverride symbol that uses the given
// pair of glyphs, or nil.
func (t *Table) FenceName(open, close string) *Symbol {
	return t.fences[[2]string{open, close}]
}

// FontName returns the preferred FontRemap symbol that sets the given math
// variant, or nil.
func (t *Table) FontName(variant string) *Symbol {
	return t.fonts[variant]
}

// Complete returns all names and aliases that start with prefix, sorted.
func (t *Table) Complete(prefix string) []string {
	i := sort.SearchStrings(t.names, prefix)
	j := i
	for j < len(t.names) && strings.HasPrefix(t.names[j], prefix) {
		j++
	}
	return append([]string(nil), t.names[i:j]...)
}

// Names returns all names and aliases, sorted.
func (t *Table) Names() []string {
	return append([]string(nil), t.names...)
}

// Symbols returns all symbols in definition order, without aliases.
func (t *Table) Symbols() []*Symbol {
	return append([]*Symbol(nil), t.defs...)
}

// Len returns the number of names and aliases in the table.
func (t *Table) Len() int {
	return len(t.names)
}

// With returns a new table with the given symbols added. A symbol replaces an
// existing symbol with the same name.
func (t *Table) With(defs ...*Symbol) *Table {
	replace := make(map[string]*Symbol, len(defs))
	for _, def := range defs {
		replace[def.Name] = def
	}
	merged := make([]*Symbol, 0, len(t.defs)+len(defs))
	for _, def := range t.defs {
		if r, ok := replace[def.Name]; ok {
			merged = append(merged, r)
			delete(replace, def.Name)
		} else {
			merged = append(merged, def)
		}
	}
	for _, def := range defs {
		if replace[def.Name] == def {
			merged = append(merged, def)
		}
	}
	return NewTable(merged)
}

// LegacyPhi returns a table where phi and varPhi render as each other's
// glyph: phi as φ and varPhi as ϕ. The result is computed once per table.
func (t *Table) LegacyPhi() *Table {
	t.legacyOnce.Do(func() {
		phi, varPhi := t.Get("phi"), t.Get("varPhi")
		if phi == nil || varPhi == nil {
			t.legacy = t
			return
		}
		newPhi, newVarPhi := *phi, *varPhi
		newPhi.Output, newVarPhi.Output = varPhi.Output, phi.Output
		t.legacy = t.With(&newPhi, &newVarPhi)
	})
	return t.legacy
}
