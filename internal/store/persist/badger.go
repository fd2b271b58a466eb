package persist

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

var badgerKey = []byte("state/root")

// Badger is the default engine: a local Badger database holding the
// snapshot under a single well-known key.
type Badger struct {
	db *badger.DB
}

// OpenBadger opens (or creates) the database directory at path.
func OpenBadger(path string) (*Badger, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil      // Disable Badger's internal logging
	opts.SyncWrites = true // Survive a crash right after a state change

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("persist: open badger db: %w", err)
	}
	return &Badger{db: db}, nil
}

// Load implements Engine.
func (b *Badger) Load(_ context.Context) ([]byte, error) {
	var out []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(badgerKey)
		if err != nil {
			return err
		}
		out, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("persist: load snapshot: %w", err)
	}
	return out, nil
}

// Save implements Engine.
func (b *Badger) Save(_ context.Context, snapshot []byte) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(badgerKey, snapshot)
	})
	if err != nil {
		return fmt.Errorf("persist: save snapshot: %w", err)
	}
	return nil
}

// Close releases the database.
func (b *Badger) Close() error {
	return b.db.Close()
}
