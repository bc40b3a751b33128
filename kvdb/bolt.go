package kvdb

import (
	"bytes"

	"github.com/cockroachdb/errors"
	"go.etcd.io/bbolt"

	"hybridbench/bench"
)

const bucketName = "results"

type boltStore struct {
	db *bbolt.DB
}

func openBolt(path string) (*boltStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "open bbolt %s", path)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "create bucket")
	}
	return &boltStore{db: db}, nil
}

func (s *boltStore) Put(run string, results []bench.Result) error {
	if err := checkRun(run); err != nil {
		return err
	}
	prefix := runPrefix(run)

	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))

		// 커서 순회 중 삭제하면 다음 키를 건너뛰므로 키를 먼저 모은다
		var stale [][]byte
		c := b.Cursor()
		for k, _ := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = c.Next() {
			stale = append(stale, bytes.Clone(k))
		}
		for _, k := range stale {
			if err := b.Delete(k); err != nil {
				return err
			}
		}

		for i, r := range results {
			v, err := encodeResult(r)
			if err != nil {
				return err
			}
			if err := b.Put(recordKey(run, i), v); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *boltStore) Load(run string) ([]bench.Result, error) {
	if err := checkRun(run); err != nil {
		return nil, err
	}
	prefix := runPrefix(run)

	results := []bench.Result{}
	err := s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket([]byte(bucketName)).Cursor()
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
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

func (s *boltStore) Close() error {
	return s.db.Close()
}
