package convert

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"amath.elv.sh/pkg/prog"
	"amath.elv.sh/pkg/store"
	"amath.elv.sh/pkg/store/storedefs"
	"amath.elv.sh/pkg/symbol"
)

var errNoDB = errors.New("no database path")

func openStore(path string) (store.DBStore, error) {
	if path == "" {
		return nil, errNoDB
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, err
	}
	return store.NewStore(path)
}

func definition(s storedefs.Symbol) symbol.Def {
	return symbol.Def{Name: s.Name, Output: s.Output, TeX: s.TeX, Description: s.Description}
}

// Registers the symbols saved in the store in symbol.Default.
func registerStoredSymbols(st storedefs.Store) error {
	syms, err := st.Symbols()
	if err != nil {
		return err
	}
	defs := make([]symbol.Def, len(syms))
	for i, s := range syms {
		defs[i] = definition(s)
	}
	return symbol.Default.RegisterDefinitions(defs)
}

// Saves symbols given as name=output arguments in the store. An empty output
// deletes the symbol.
func defineSymbols(st storedefs.Store, args []string) error {
	for _, arg := range args {
		name, output, ok := strings.Cut(arg, "=")
		if !ok {
			return prog.BadUsage(fmt.Sprintf("symbol definition %q is not of the form name=output", arg))
		}
		if output == "" {
			if err := st.DelSymbol(name); err != nil {
				return fmt.Errorf("delete symbol %s: %w", name, err)
			}
			continue
		}
		s := storedefs.Symbol{Name: name, Output: output}
		if _, err := definition(s).Symbol(); err != nil {
			return err
		}
		if err := st.AddSymbol(s); err != nil {
			return err
		}
	}
	return nil
}

// An auxiliary struct for converting symbols to JSON.
type symbolInJSON struct {
	Name        string `json:"name"`
	Output      string `json:"output"`
	Group       string `json:"group"`
	TeX         string `json:"tex,omitempty"`
	Description string `json:"description,omitempty"`
}

// Lists all symbols of the current table.
func listSymbols(w io.Writer, asJSON bool) error {
	syms := symbol.Default.Table().Symbols()
	if !asJSON {
		for _, s := range syms {
			fmt.Fprintln(w, s.Describe())
		}
		return nil
	}
	converted := make([]symbolInJSON, len(syms))
	for i, s := range syms {
		converted[i] = symbolInJSON{s.Name, s.Output, s.Group.String(), s.TeX, s.Description}
	}
	return json.NewEncoder(w).Encode(converted)
}

// An auxiliary struct for converting history entries to JSON.
type entryInJSON struct {
	Seq  int    `json:"seq"`
	Text string `json:"text"`
}

func listHistory(w io.Writer, st storedefs.Store, asJSON bool) error {
	upto, err := st.NextEntrySeq()
	if err != nil {
		return err
	}
	entries, err := st.Entries(0, upto)
	if err != nil {
		return err
	}
	if !asJSON {
		for _, e := range entries {
			fmt.Fprintf(w, "%5d  %s\n", e.Seq, e.Text)
		}
		return nil
	}
	converted := make([]entryInJSON, len(entries))
	for i, e := range entries {
		converted[i] = entryInJSON{e.Seq, e.Text}
	}
	return json.NewEncoder(w).Encode(converted)
}
