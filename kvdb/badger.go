package kvdb

import (
	"github.com/cockroachdb/errors"
	"github.com/dgraph-io/badger/v3"

	"hybridbench/bench"
)

type badgerStore struct {
	db *badger.DB
}

func openBadger(dir string) (*badgerStore, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "open badger %s", dir)
	}
	return &badgerStore{db: db}, nil
}

func (s *badgerStore) Put(run string, results []bench.Result) error {
	if err := checkRun(run); err != nil {
		return err
	}
	if err := s.db.DropPrefix(runPrefix(run)); err != nil {
		return errors.Wrap(err, "drop previous run")
	}

	wb := s.db.NewWriteBatch()
	for i, r := range results {
		v, err := encodeResult(r)
		if err == nil {
			err = wb.Set(recordKey(run, i), v)
		}
		if err != nil {
			wb.Cancel()
			return err
		}
	}
	return wb.Flush()
}

func (s *badgerStore) Load(run string) ([]bench.Result, error) {
	if err := checkRun(run); err != nil {
		return nil, err
	}

	results := []bench.Result{}
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = runPrefix(run)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			v, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			r, err := decodeResult(v)
			if err != nil {
				return err
			}
			results = append(results, r)
		}
		return nil
	})
	return results, err
}

func (s *badgerStore) Close() error {
	return s.db.Close()
}
