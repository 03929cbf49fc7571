package store

import (
	"encoding/binary"

	. "amath.elv.sh/pkg/store/storedefs"
	bolt "go.etcd.io/bbolt"
)

func init() {
	initDB["initialize conversion history table"] = func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketHistory))
		return err
	}
}

// NextEntrySeq returns the next sequence number of the conversion history.
func (s *dbStore) NextEntrySeq() (int, error) {
	var seq uint64
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketHistory))
		seq = b.Sequence() + 1
		return nil
	})
	return int(seq), err
}

// AddEntry adds a new entry to the conversion history.
func (s *dbStore) AddEntry(text string) (int, error) {
	var (
		seq uint64
		err error
	)
	err = s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketHistory))
		seq, err = b.NextSequence()
		if err != nil {
			return err
		}
		return b.Put(marshalSeq(seq), []byte(text))
	})
	return int(seq), err
}

// DelEntry deletes a history entry with the given sequence number.
func (s *dbStore) DelEntry(seq int) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketHistory))
		return b.Delete(marshalSeq(uint64(seq)))
	})
}

// Entry queries the history entry with the specified sequence number.
func (s *dbStore) Entry(seq int) (string, error) {
	var text string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketHistory))
		v := b.Get(marshalSeq(uint64(seq)))
		if v == nil {
			return ErrNoEntry
		}
		text = string(v)
		return nil
	})
	return text, err
}

// Entries returns all entries with sequence numbers in [from, upto).
func (s *dbStore) Entries(from, upto int) ([]Entry, error) {
	var entries []Entry
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketHistory))
		c := b.Cursor()
		for k, v := c.Seek(marshalSeq(uint64(from))); k != nil && unmarshalSeq(k) < uint64(upto); k, v = c.Next() {
			entries = append(entries, Entry{Text: string(v), Seq: int(unmarshalSeq(k))})
		}
		return nil
	})
	return entries, err
}

func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}

func unmarshalSeq(key []byte) uint64 {
	return binary.BigEndian.Uint64(key)
}
