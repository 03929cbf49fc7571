package store

import (
	"fmt"

	. "amath.elv.sh/pkg/store/storedefs"
	bolt "go.etcd.io/bbolt"
	"gopkg.in/yaml.v3"
)

func init() {
	initDB["initialize symbol table"] = func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketSymbols))
		return err
	}
}

// AddSymbol adds a symbol, replacing an existing symbol with the same name.
// Symbols are stored in the same YAML form as symbol files.
func (s *dbStore) AddSymbol(sym Symbol) error {
	v, err := yaml.Marshal(sym)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketSymbols))
		return b.Put([]byte(sym.Name), v)
	})
}

// DelSymbol deletes a symbol.
func (s *dbStore) DelSymbol(name string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketSymbols))
		if b.Get([]byte(name)) == nil {
			return ErrNoSymbol
		}
		return b.Delete([]byte(name))
	})
}

// Symbol gets a symbol by name.
func (s *dbStore) Symbol(name string) (Symbol, error) {
	var sym Symbol
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketSymbols))
		v := b.Get([]byte(name))
		if v == nil {
			return ErrNoSymbol
		}
		return unmarshalSymbol(name, v, &sym)
	})
	return sym, err
}

// Symbols returns all symbols, sorted by name.
func (s *dbStore) Symbols() ([]Symbol, error) {
	var syms []Symbol
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketSymbols))
		return b.ForEach(func(k, v []byte) error {
			var sym Symbol
			if err := unmarshalSymbol(string(k), v, &sym); err != nil {
				return err
			}
			syms = append(syms, sym)
			return nil
		})
	})
	return syms, err
}

func unmarshalSymbol(name string, v []byte, sym *Symbol) error {
	if err := yaml.Unmarshal(v, sym); err != nil {
		return fmt.Errorf("corrupt symbol %s: %w", name, err)
	}
	return nil
}
