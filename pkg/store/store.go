// Package store implements storage of user-defined symbols and the conversion
// history, backed by a bbolt database.
package store

import (
	"fmt"
	"time"

	"amath.elv.sh/pkg/logutil"
	"amath.elv.sh/pkg/store/storedefs"
	bolt "go.etcd.io/bbolt"
)

var logger = logutil.GetLogger("[store] ")

// Bucket names.
const (
	bucketSymbols = "symbols"
	bucketHistory = "history"
)

// Functions that initialize the database, keyed by description.
var initDB = map[string](func(*bolt.Tx) error){}

// DBStore is the storage backed by a database.
type DBStore interface {
	storedefs.Store
	Close() error
}

type dbStore struct {
	db *bolt.DB
}

// NewStore creates a new Store from the given file.
func NewStore(dbname string) (DBStore, error) {
	db, err := bolt.Open(dbname, 0644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	return NewStoreFromDB(db)
}

// NewStoreFromDB creates a new Store from a bolt DB.
func NewStoreFromDB(db *bolt.DB) (DBStore, error) {
	logger.Println("initializing store")
	defer logger.Println("initialized store")
	st := &dbStore{db: db}

	err := db.Update(func(tx *bolt.Tx) error {
		for name, fn := range initDB {
			if err := fn(tx); err != nil {
				return fmt.Errorf("failed to %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return st, nil
}

// Close releases the database.
func (s *dbStore) Close() error {
	return s.db.Close()
}
