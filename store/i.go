package store

import (
	"github.com/sgostarter/libtabulated/tabulated"
)

// Storage persists encoded functions by key. Load and Delete report a missing
// key with commerr.ErrNotFound.
type Storage interface {
	Load(key string) (string, error)
	Save(key, data string) error
	Delete(key string) error
	Keys() ([]string, error)
}

type Store interface {
	Put(key string, f tabulated.TabulatedFunction) error
	Get(key string) (tabulated.TabulatedFunction, error)
	Remove(key string) error
	Keys() ([]string, error)
}
