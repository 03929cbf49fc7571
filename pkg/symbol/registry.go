package symbol

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"unicode"
	"unicode/utf8"

	"amath.elv.sh/pkg/logutil"
	"amath.elv.sh/pkg/mathml"
)

var logger = logutil.GetLogger("[symbol] ")

// ErrInvalidName is returned when registering a symbol with an empty name or
// a name starting with a space or control character.
var ErrInvalidName = errors.New("invalid symbol name")

// Registry holds the current Table. Registering symbols publishes a new Table;
// readers that already obtained a Table keep using it unchanged.
type Registry struct {
	mu      sync.Mutex
	current atomic.Pointer[Table]
}

// NewRegistry creates a Registry whose current table is t.
func NewRegistry(t *Table) *Registry {
	r := &Registry{}
	r.current.Store(t)
	return r
}

// Default is the process-wide registry, initialized with the builtin symbols.
var Default = NewRegistry(BuiltinTable())

// Table returns the current table.
func (r *Registry) Table() *Table {
	return r.current.Load()
}

// Register adds a symbol that expands to output when it appears in the input.
// An existing symbol with the same name is replaced.
func (r *Registry) Register(name, output, tex, description string) error {
	s, err := NewDefinition(name, output, tex, description)
	if err != nil {
		return err
	}
	r.RegisterSymbols(s)
	return nil
}

// RegisterSymbols adds the given symbols, replacing existing symbols with the
// same names, and publishes the resulting table.
func (r *Registry) RegisterSymbols(syms ...*Symbol) {
	if len(syms) == 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current.Store(r.current.Load().With(syms...))
	logger.Printf("registered %d symbols", len(syms))
}

// NewDefinition creates a user-defined symbol that expands to output.
func NewDefinition(name, output, tex, description string) (*Symbol, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	if tex != "" {
		if err := checkName(tex); err != nil {
			return nil, err
		}
	}
	return &Symbol{
		Name: name, Output: output, Kind: mathml.Operator, Arity: Definition,
		TeX: tex, Group: Defined, Description: description, Behavior: Plain{},
	}, nil
}

func checkName(name string) error {
	r, _ := utf8.DecodeRuneInString(name)
	if name == "" || r <= ' ' || unicode.IsSpace(r) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
