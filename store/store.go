package store

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libtabulated/codec"
	"github.com/sgostarter/libtabulated/tabulated"
)

const defaultCacheExpiration = time.Minute

type Config struct {
	CacheExpiration time.Duration `yaml:"cache_expiration" json:"cache_expiration"`
}

// NewStore keeps functions in storage using the type-tagged text format, so
// the backend kind survives a round trip. A nil registry means the
// process-wide one.
func NewStore(storage Storage, registry *tabulated.Registry, cfg *Config, logger l.Wrapper) Store {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "storeImpl"))

	if storage == nil {
		logger.Fatal("no storage")
	}

	if registry == nil {
		registry = tabulated.StdRegistry()
	}

	if cfg == nil {
		cfg = &Config{}
	}

	expiration := cfg.CacheExpiration
	if expiration <= 0 {
		expiration = defaultCacheExpiration
	}

	return &storeImpl{
		logger:     logger,
		storage:    storage,
		registry:   registry,
		expiration: expiration,
		decoded:    cache.New(expiration, expiration*2),
	}
}

type storeImpl struct {
	logger     l.Wrapper
	storage    Storage
	registry   *tabulated.Registry
	expiration time.Duration
	decoded    *cache.Cache
}

func checkKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("%w: empty key", commerr.ErrInvalidArgument)
	}

	return nil
}

func (impl *storeImpl) Put(key string, f tabulated.TabulatedFunction) error {
	if err := checkKey(key); err != nil {
		return err
	}

	if f == nil {
		return fmt.Errorf("%w: nil function", tabulated.ErrValidation)
	}

	var buf bytes.Buffer

	if err := codec.WriteTaggedTo(&buf, f, "", impl.registry); err != nil {
		return err
	}

	if err := impl.storage.Save(key, buf.String()); err != nil {
		impl.logger.WithFields(l.ErrorField(err), l.StringField("key", key)).Error("save failed")

		return err
	}

	impl.decoded.Set(key, f.Clone(), impl.expiration)

	return nil
}

// Get returns a private copy; mutating it does not touch the stored value.
func (impl *storeImpl) Get(key string) (tabulated.TabulatedFunction, error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}

	if v, ok := impl.decoded.Get(key); ok {
		if f, ok := v.(tabulated.TabulatedFunction); ok {
			return f.Clone(), nil
		}
	}

	data, err := impl.storage.Load(key)
	if err != nil {
		return nil, err
	}

	f, err := codec.ReadTaggedFrom(strings.NewReader(data), impl.registry)
	if err != nil {
		impl.logger.WithFields(l.ErrorField(err), l.StringField("key", key)).Error("decode failed")

		return nil, err
	}

	impl.decoded.Set(key, f, impl.expiration)

	return f.Clone(), nil
}

func (impl *storeImpl) Remove(key string) error {
	if err := checkKey(key); err != nil {
		return err
	}

	impl.decoded.Delete(key)

	return impl.storage.Delete(key)
}

func (impl *storeImpl) Keys() ([]string, error) {
	return impl.storage.Keys()
}
