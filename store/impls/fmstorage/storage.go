package fmstorage

import (
	"path/filepath"
	"slices"
	"sync"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/stg"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"github.com/sgostarter/libeasygo/stg/mwf"
	"github.com/sgostarter/libtabulated/store"
)

func NewFMStorage(root string, storage stg.FileStorage) store.Storage {
	if storage == nil {
		storage = rawfs.NewFSStorage("")
	}

	return &fmStorageImpl{
		functions: mwf.NewMemWithFile[map[string]string, mwf.Serial, mwf.Lock](
			make(map[string]string), &mwf.JSONSerial{}, &sync.RWMutex{}, filepath.Join(root, "functions.json"), storage),
	}
}

type fmStorageImpl struct {
	functions *mwf.MemWithFile[map[string]string, mwf.Serial, mwf.Lock]
}

func (impl *fmStorageImpl) Load(key string) (data string, err error) {
	impl.functions.Read(func(m map[string]string) {
		var ok bool

		data, ok = m[key]
		if !ok {
			err = commerr.ErrNotFound
		}
	})

	return
}

func (impl *fmStorageImpl) Save(key, data string) error {
	return impl.functions.Change(func(oldM map[string]string) (newM map[string]string, err error) {
		newM = oldM
		if len(newM) == 0 {
			newM = make(map[string]string)
		}

		newM[key] = data

		return
	})
}

func (impl *fmStorageImpl) Delete(key string) error {
	return impl.functions.Change(func(oldM map[string]string) (newM map[string]string, err error) {
		newM = oldM
		if len(newM) == 0 {
			newM = make(map[string]string)
		}

		if _, ok := newM[key]; !ok {
			err = commerr.ErrNotFound

			return
		}

		delete(newM, key)

		return
	})
}

func (impl *fmStorageImpl) Keys() (keys []string, err error) {
	impl.functions.Read(func(m map[string]string) {
		keys = make([]string, 0, len(m))

		for key := range m {
			keys = append(keys, key)
		}
	})

	slices.Sort(keys)

	return
}
