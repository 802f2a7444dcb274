package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const (
	keySession     = "session"
	perftKeyPrefix = "perft/"
)

// EngineSession stores the engine's persisted configuration between UCI/
// TUI invocations: the last hash table size and search depth the user
// chose, and the position they left off on.
type EngineSession struct {
	HashMB       int       `json:"hash_mb"`
	DefaultDepth int       `json:"default_depth"`
	LastFEN      string    `json:"last_fen"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DefaultSession returns the session state used before anything has been
// saved.
func DefaultSession() *EngineSession {
	return &EngineSession{
		HashMB:       64,
		DefaultDepth: 8,
	}
}

// PerftRecord is one completed perft benchmark run, kept for regression
// tracking across engine versions.
type PerftRecord struct {
	FEN        string        `json:"fen"`
	Depth      int           `json:"depth"`
	Nodes      uint64        `json:"nodes"`
	Elapsed    time.Duration `json:"elapsed"`
	RecordedAt time.Time     `json:"recorded_at"`
}

// Storage wraps BadgerDB for persistent storage of session state and
// perft history.
type Storage struct {
	db *badger.DB
}

// NewStorage opens (creating if necessary) the engine's database in its
// platform data directory.
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Storage{db: db}, nil
}

// Close closes the underlying database.
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSession persists the current engine session state.
func (s *Storage) SaveSession(sess *EngineSession) error {
	sess.UpdatedAt = time.Now()

	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keySession), data)
	})
}

// LoadSession loads the saved engine session, or defaults if none exists.
func (s *Storage) LoadSession() (*EngineSession, error) {
	sess := DefaultSession()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keySession))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, sess)
		})
	})

	return sess, err
}

// RecordPerft appends one perft benchmark result to the history, keyed
// by its recorded time so iteration returns runs in chronological order.
func (s *Storage) RecordPerft(rec PerftRecord) error {
	if rec.RecordedAt.IsZero() {
		rec.RecordedAt = time.Now()
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	key := fmt.Sprintf("%s%020d", perftKeyPrefix, rec.RecordedAt.UnixNano())
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// PerftHistory returns every recorded perft run, oldest first.
func (s *Storage) PerftHistory() ([]PerftRecord, error) {
	var records []PerftRecord

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(perftKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(opts.Prefix); it.ValidForPrefix(opts.Prefix); it.Next() {
			item := it.Item()
			var rec PerftRecord
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			}); err != nil {
				return err
			}
			records = append(records, rec)
		}
		return nil
	})

	return records, err
}

// PerftRegressions returns prior runs for the same FEN and depth whose
// node count differs from want, surfacing a move generation regression.
func (s *Storage) PerftRegressions(fen string, depth int, want uint64) ([]PerftRecord, error) {
	history, err := s.PerftHistory()
	if err != nil {
		return nil, err
	}

	var mismatches []PerftRecord
	for _, rec := range history {
		if rec.FEN == fen && rec.Depth == depth && rec.Nodes != want {
			mismatches = append(mismatches, rec)
		}
	}
	return mismatches, nil
}
