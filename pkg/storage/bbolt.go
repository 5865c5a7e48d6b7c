package storage

import (
	"fmt"

	bolt "go.etcd.io/bbolt"
)

// BoltStore implements Store using bbolt. Runs live JSON-encoded in a single
// bucket keyed by run ID.
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore opens (or creates) the catalog database at dbPath
func NewBoltStore(dbPath string) (*BoltStore, error) {
	db, err := bolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bbolt database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(runsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}

	return &BoltStore{db: db}, nil
}

func (b *BoltStore) SaveRun(run *Run) error {
	data, err := encodeRun(run)
	if err != nil {
		return err
	}
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(runsBucket).Put([]byte(run.ID), data)
	})
}

func (b *BoltStore) GetRun(id string) (*Run, error) {
	var run *Run
	err := b.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(runsBucket).Get([]byte(id))
		if v == nil {
			return fmt.Errorf("%w: %s", ErrRunNotFound, id)
		}
		// v is only valid during the transaction; decoding copies it
		var err error
		run, err = decodeRun(v)
		return err
	})
	if err != nil {
		return nil, err
	}
	if err := checkVersion(run); err != nil {
		return nil, err
	}
	return run, nil
}

func (b *BoltStore) ListRuns() ([]*Run, error) {
	var runs []*Run
	err := b.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(runsBucket).ForEach(func(_, v []byte) error {
			run, err := decodeRun(v)
			if err != nil {
				return err
			}
			if checkVersion(run) == nil {
				runs = append(runs, run)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sortNewestFirst(runs)
	return runs, nil
}

func (b *BoltStore) DeleteRun(id string) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(runsBucket)
		if bkt.Get([]byte(id)) == nil {
			return fmt.Errorf("%w: %s", ErrRunNotFound, id)
		}
		return bkt.Delete([]byte(id))
	})
}

// Close closes the database
func (b *BoltStore) Close() error {
	return b.db.Close()
}
