package main

import (
	"log/slog"

	"github.com/katalvlaran/relmatch/config"
	"github.com/katalvlaran/relmatch/federation"
	"github.com/katalvlaran/relmatch/pattern"
	"github.com/katalvlaran/relmatch/reflex"
	"github.com/katalvlaran/relmatch/store"
	"github.com/spf13/cobra"
)

// app carries the flags and the state resolved before every subcommand.
type app struct {
	configPath string
	logLevel   string
	dbPath     string
	inMemory   bool

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "relmatch",
		Short:         "Relation matching over pattern alphabets",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.dbPath, "db", "", "badger directory (overrides store.dir)")
	pf.BoolVar(&a.inMemory, "in-memory", false, "keep the store in memory")

	root.AddCommand(
		a.alphabetCmd(),
		a.translateCmd(),
		a.checksumCmd(),
		a.glyphsCmd(),
		a.initCmd(),
		a.learnCmd(),
		a.verifyCmd(),
		a.setsCmd(),
	)

	return root
}

// setup loads config, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.dbPath != "" {
		cfg.Store.Dir = a.dbPath
	}
	if a.inMemory {
		cfg.Store.InMemory = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = cfg.Log.Logger(cmd.ErrOrStderr())

	return nil
}

func (a *app) openStore() (*store.Store, error) {
	return store.Open(store.Config{
		Path:     a.cfg.Store.Dir,
		InMemory: a.cfg.Store.InMemory,
	})
}

// rebuild restores a federation from a stored snapshot.
func (a *app) rebuild(name string, baseline *pattern.Set, units []*pattern.Set) (*federation.Federation, error) {
	f, err := federation.New(baseline, reflex.Exact{},
		federation.WithName(name),
		federation.WithLogger(a.logger),
		federation.WithLimits(a.cfg.Parallel.Limits(a.logger)),
		federation.WithUnitLimits(a.cfg.Unit.Limits(a.logger)),
	)
	if err != nil {
		return nil, err
	}
	for _, u := range units {
		if _, err := f.Restore(u); err != nil {
			return nil, err
		}
	}

	return f, nil
}
