package symbol

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Def is the serialized form of a user-defined symbol, as found in
// symbol files and in the store.
type Def struct {
	Name        string `yaml:"name" json:"name"`
	Output      string `yaml:"output" json:"output"`
	TeX         string `yaml:"tex,omitempty" json:"tex,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Symbol converts the definition to a symbol.
func (d Def) Symbol() (*Symbol, error) {
	return NewDefinition(d.Name, d.Output, d.TeX, d.Description)
}

// LoadDefinitions decodes a YAML list of definitions, like:
//
//	- name: R2
//	  output: RR^2
//	  description: the real plane
func LoadDefinitions(r io.Reader) ([]Def, error) {
	var defs []Def
	err := yaml.NewDecoder(r).Decode(&defs)
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("decode symbol definitions: %w", err)
	}
	return defs, nil
}

// RegisterDefinitions converts all definitions to symbols and registers them
// in one step. Nothing is registered if any definition is invalid.
func (r *Registry) RegisterDefinitions(defs []Def) error {
	syms := make([]*Symbol, len(defs))
	for i, def := range defs {
		s, err := def.Symbol()
		if err != nil {
			return err
		}
		syms[i] = s
	}
	r.RegisterSymbols(syms...)
	return nil
}
