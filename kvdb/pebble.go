package kvdb

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"

	"hybridbench/bench"
)

type pebbleStore struct {
	db *pebble.DB
}

func openPebble(dir string) (*pebbleStore, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, errors.Wrapf(err, "open pebble %s", dir)
	}
	return &pebbleStore{db: db}, nil
}

func (s *pebbleStore) Put(run string, results []bench.Result) error {
	if err := checkRun(run); err != nil {
		return err
	}

	batch := s.db.NewBatch()
	defer batch.Close()

	// 이전 실행 레코드는 범위 삭제로 한 번에 지운다
	if err := batch.DeleteRange(runPrefix(run), prefixEnd(run), nil); err != nil {
		return err
	}
	for i, r := range results {
		v, err := encodeResult(r)
		if err != nil {
			return err
		}
		if err := batch.Set(recordKey(run, i), v, nil); err != nil {
			return err
		}
	}
	return batch.Commit(pebble.Sync)
}

func (s *pebbleStore) Load(run string) ([]bench.Result, error) {
	if err := checkRun(run); err != nil {
		return nil, err
	}

	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: runPrefix(run),
		UpperBound: prefixEnd(run),
	})
	if err != nil {
		return nil, err
	}

	results := []bench.Result{}
	for iter.First(); iter.Valid(); iter.Next() {
		r, err := decodeResult(iter.Value())
		if err != nil {
			iter.Close()
			return nil, err
		}
		results = append(results, r)
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *pebbleStore) Close() error {
	return s.db.Close()
}
