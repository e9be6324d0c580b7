package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/go-redis/redis/v8"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libeasygo/pathutils"
	"github.com/sgostarter/libtabulated/codec"
	"github.com/sgostarter/libtabulated/functions"
	"github.com/sgostarter/libtabulated/integration"
	"github.com/sgostarter/libtabulated/store"
	"github.com/sgostarter/libtabulated/store/impls/boltstorage"
	"github.com/sgostarter/libtabulated/store/impls/fmstorage"
	"github.com/sgostarter/libtabulated/store/impls/redisimpls"
	"github.com/sgostarter/libtabulated/tabulated"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type storeConfig struct {
	Root     string       `yaml:"root"`
	BoltPath string       `yaml:"bolt_path"`
	RedisDSN string       `yaml:"redis_dsn"`
	PreKey   string       `yaml:"pre_key"`
	Cache    store.Config `yaml:",inline"`
}

type cliConfig struct {
	Backend     string             `yaml:"backend"`
	Format      string             `yaml:"format"`
	Store       storeConfig        `yaml:"store"`
	Integration integration.Config `yaml:"integration"`
}

func defaultConfig() cliConfig {
	return cliConfig{
		Backend: string(tabulated.KindArray),
		Format:  codec.FormatBare.String(),
		Store: storeConfig{
			Root:   "tabfunc-data",
			PreKey: "tabfunc",
		},
	}
}

type app struct {
	logger l.Wrapper

	configFile string
	input      string
	cfg        cliConfig

	registry *tabulated.Registry
	format   codec.Format
}

func newApp(logger l.Wrapper) *app {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	return &app{
		logger:   logger.WithFields(l.StringField(l.ClsKey, "tabfunc")),
		cfg:      defaultConfig(),
		registry: tabulated.NewRegistry(),
	}
}

// setup loads the config file, lets explicitly set flags override it and
// selects the default backend of the app registry.
func (a *app) setup(cmd *cobra.Command) error {
	backend, format := a.cfg.Backend, a.cfg.Format

	if a.configFile != "" {
		d, err := os.ReadFile(a.configFile)
		if err != nil {
			return err
		}

		if err = yaml.Unmarshal(d, &a.cfg); err != nil {
			return fmt.Errorf("%w: config %s: %w", tabulated.ErrConfiguration, a.configFile, err)
		}
	}

	if cmd.Flags().Changed("backend") {
		a.cfg.Backend = backend
	}

	if cmd.Flags().Changed("format") {
		a.cfg.Format = format
	}

	factory, err := a.registry.Factory(tabulated.Kind(a.cfg.Backend))
	if err != nil {
		return err
	}

	if err = a.registry.SetDefaultFactory(factory); err != nil {
		return err
	}

	a.format, err = codec.ParseFormat(a.cfg.Format)

	return err
}

func (a *app) kind() tabulated.Kind {
	return tabulated.Kind(a.cfg.Backend)
}

func (a *app) openInput(cmd *cobra.Command) (io.ReadCloser, error) {
	if a.input == "" || a.input == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}

	return os.Open(a.input)
}

func (a *app) readFunction(cmd *cobra.Command) (tabulated.TabulatedFunction, error) {
	r, err := a.openInput(cmd)
	if err != nil {
		return nil, err
	}

	defer r.Close()

	return codec.Decode(r, a.format, a.registry.DefaultFactory(), a.registry)
}

func (a *app) writeFunction(cmd *cobra.Command, f tabulated.TabulatedFunction, format codec.Format) error {
	if format == codec.FormatTagged {
		return codec.WriteTaggedTo(cmd.OutOrStdout(), f, "", a.registry)
	}

	return codec.Encode(cmd.OutOrStdout(), f, format, "")
}

func (a *app) openStore() (store.Store, func(), error) {
	cfg := a.cfg.Store

	if cfg.RedisDSN != "" {
		opts, err := redis.ParseURL(cfg.RedisDSN)
		if err != nil {
			return nil, nil, err
		}

		redisCli := redis.NewClient(opts)
		storage := redisimpls.NewRedisStorage(cfg.PreKey, redisCli, a.logger)

		return store.NewStore(storage, a.registry, &cfg.Cache, a.logger), func() {
			_ = redisCli.Close()
		}, nil
	}

	if cfg.BoltPath != "" {
		storage, err := boltstorage.NewBoltStorage(cfg.BoltPath, a.logger)
		if err != nil {
			return nil, nil, err
		}

		return store.NewStore(storage, a.registry, &cfg.Cache, a.logger), func() {
			_ = storage.Close()
		}, nil
	}

	if err := pathutils.MustDirExists(cfg.Root); err != nil {
		return nil, nil, err
	}

	return store.NewStore(fmstorage.NewFMStorage(cfg.Root, nil), a.registry, &cfg.Cache, a.logger), func() {}, nil
}

// parseFunction understands exp, sin, cos, tan, ln and log:<base>.
func parseFunction(expr string) (tabulated.Function, error) {
	name, param, hasParam := strings.Cut(strings.TrimSpace(expr), ":")

	switch strings.ToLower(name) {
	case "exp":
		return functions.Exp(), nil
	case "sin":
		return functions.Sin(), nil
	case "cos":
		return functions.Cos(), nil
	case "tan":
		return functions.Tan(), nil
	case "ln":
		return functions.Log(math.E), nil
	case "log":
		if !hasParam {
			return functions.Log(10), nil
		}

		base, err := cast.ToFloat64E(param)
		if err != nil {
			return nil, fmt.Errorf("%w: log base %q", commerr.ErrInvalidArgument, param)
		}

		return functions.Log(base), nil
	}

	return nil, fmt.Errorf("%w: unknown function %q", commerr.ErrInvalidArgument, expr)
}
