package boltstorage

import (
	"io"
	"time"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libtabulated/store"
	bbolt "go.etcd.io/bbolt"
)

var bucketFunctions = []byte("functions")

// BoltStorage is a store.Storage kept in a single bbolt file. Close releases
// the file lock.
type BoltStorage interface {
	store.Storage
	io.Closer
}

func NewBoltStorage(path string, logger l.Wrapper) (BoltStorage, error) {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "boltStorageImpl"))

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		logger.WithFields(l.ErrorField(err), l.StringField("path", path)).Error("open db failed")

		return nil, err
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, e := tx.CreateBucketIfNotExists(bucketFunctions)

		return e
	})
	if err != nil {
		_ = db.Close()

		return nil, err
	}

	return &boltStorageImpl{
		db:     db,
		logger: logger,
	}, nil
}

type boltStorageImpl struct {
	db     *bbolt.DB
	logger l.Wrapper
}

func (impl *boltStorageImpl) Load(key string) (data string, err error) {
	err = impl.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(bucketFunctions).Get([]byte(key))
		if v == nil {
			return commerr.ErrNotFound
		}

		data = string(v)

		return nil
	})

	return
}

func (impl *boltStorageImpl) Save(key, data string) error {
	return impl.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketFunctions).Put([]byte(key), []byte(data))
	})
}

func (impl *boltStorageImpl) Delete(key string) error {
	return impl.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketFunctions)
		if b.Get([]byte(key)) == nil {
			return commerr.ErrNotFound
		}

		return b.Delete([]byte(key))
	})
}

// Keys come back in byte order, which is how bbolt iterates a bucket.
func (impl *boltStorageImpl) Keys() (keys []string, err error) {
	err = impl.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketFunctions).ForEach(func(k, _ []byte) error {
			keys = append(keys, string(k))

			return nil
		})
	})

	return
}

func (impl *boltStorageImpl) Close() error {
	err := impl.db.Close()
	if err != nil {
		impl.logger.WithFields(l.ErrorField(err)).Error("close db failed")
	}

	return err
}
