package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/katalvlaran/relmatch/pattern"
)

// Config holds configuration for a Store.
type Config struct {
	// Path is the badger directory. Ignored when InMemory is true.
	Path string

	// InMemory keeps everything in memory. Useful for tests.
	InMemory bool

	// SyncWrites fsyncs every commit.
	SyncWrites bool

	// Logger receives badger's internal messages. Nil disables them.
	Logger *slog.Logger
}

// Store is a badger-backed pattern store.
type Store struct {
	db     *badger.DB
	logger *slog.Logger
}

// badgerLogger adapts slog.Logger to badger.Logger.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// Open opens the store described by cfg, creating the directory if needed.
// The caller must Close it.
func Open(cfg Config) (*Store, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, ErrNoPath
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("store: create directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).WithNumVersionsToKeep(1)

	logger := cfg.Logger
	if logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: logger})
	} else {
		opts = opts.WithLogger(nil)
		logger = slog.Default()
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("store: open badger: %w", err)
	}

	return &Store{db: db, logger: logger}, nil
}

// OpenInMemory opens an in-memory store. Data is lost on Close.
func OpenInMemory() (*Store, error) {
	return Open(Config{InMemory: true})
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

const (
	setPrefix = "set/"
	fedPrefix = "fed/"
)

func checkName(name string) error {
	if name == "" || strings.Contains(name, "/") {
		return fmt.Errorf("%w: %q", ErrBadName, name)
	}

	return nil
}

func setKey(name string) []byte      { return []byte(setPrefix + name) }
func baselineKey(name string) []byte { return []byte(fedPrefix + name + "/baseline") }
func unitPrefix(name string) []byte  { return []byte(fedPrefix + name + "/unit/") }
func unitKey(name string, i int) []byte {
	return []byte(fmt.Sprintf("%s%s/unit/%06d", fedPrefix, name, i))
}

func marshalSet(set *pattern.Set) ([]byte, error) {
	if set == nil {
		return nil, ErrNilSet
	}

	return json.Marshal(EncodeSet(set))
}

func unmarshalSet(key, data []byte) (*pattern.Set, error) {
	var rs []Record
	if err := json.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("store: %s: %w", key, err)
	}
	set, err := DecodeSet(rs)
	if err != nil {
		return nil, fmt.Errorf("store: %s: %w", key, err)
	}

	return set, nil
}

// getSet reads and decodes key inside txn.
func getSet(txn *badger.Txn, key []byte) (*pattern.Set, error) {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return nil, err
	}
	data, err := item.ValueCopy(nil)
	if err != nil {
		return nil, err
	}

	return unmarshalSet(key, data)
}

// keysWithPrefix lists every key under prefix in key order.
func keysWithPrefix(txn *badger.Txn, prefix []byte) [][]byte {
	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = false
	opts.Prefix = prefix
	it := txn.NewIterator(opts)
	defer it.Close()

	var keys [][]byte
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		keys = append(keys, it.Item().KeyCopy(nil))
	}

	return keys
}

// PutSet stores set under name, replacing any previous value.
func (s *Store) PutSet(ctx context.Context, name string, set *pattern.Set) error {
	if err := checkName(name); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := marshalSet(set)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(setKey(name), data)
	})
}

// GetSet loads the set stored under name.
// Returns ErrNotFound or ErrChecksumMismatch (wrapped).
func (s *Store) GetSet(ctx context.Context, name string) (*pattern.Set, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var set *pattern.Set
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		set, err = getSet(txn, setKey(name))
		return err
	})

	return set, err
}

// DeleteSet removes name. Deleting a missing set is not an error.
func (s *Store) DeleteSet(ctx context.Context, name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(setKey(name))
	})
}

// ListSets returns the names of stored sets starting with prefix, sorted.
func (s *Store) ListSets(ctx context.Context, prefix string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var names []string
	err := s.db.View(func(txn *badger.Txn) error {
		for _, k := range keysWithPrefix(txn, []byte(setPrefix+prefix)) {
			names = append(names, strings.TrimPrefix(string(k), setPrefix))
		}
		return nil
	})

	return names, err
}

// SaveFederation replaces the snapshot stored under name with baseline and
// units, in one transaction.
func (s *Store) SaveFederation(ctx context.Context, name string, baseline *pattern.Set, units []*pattern.Set) error {
	if err := checkName(name); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	base, err := marshalSet(baseline)
	if err != nil {
		return err
	}
	encoded := make([][]byte, len(units))
	for i, u := range units {
		if encoded[i], err = marshalSet(u); err != nil {
			return fmt.Errorf("unit %d: %w", i, err)
		}
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		for _, k := range keysWithPrefix(txn, unitPrefix(name)) {
			if err := txn.Delete(k); err != nil {
				return err
			}
		}
		if err := txn.Set(baselineKey(name), base); err != nil {
			return err
		}
		for i, data := range encoded {
			if err := txn.Set(unitKey(name, i), data); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.logger.Debug("federation saved",
		slog.String("federation", name),
		slog.Int("units", len(units)),
	)

	return nil
}

// AppendUnit adds one derived unit to an existing snapshot and returns its
// index. Returns ErrNotFound when no baseline is stored under name.
func (s *Store) AppendUnit(ctx context.Context, name string, unit *pattern.Set) (int, error) {
	if err := checkName(name); err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	data, err := marshalSet(unit)
	if err != nil {
		return 0, err
	}

	var idx int
	err = s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(baselineKey(name)); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("%w: federation %q", ErrNotFound, name)
			}
			return err
		}
		idx = len(keysWithPrefix(txn, unitPrefix(name)))
		return txn.Set(unitKey(name, idx), data)
	})

	return idx, err
}

// LoadFederation returns the baseline and derived unit sets stored under
// name, units in index order.
func (s *Store) LoadFederation(ctx context.Context, name string) (*pattern.Set, []*pattern.Set, error) {
	if err := checkName(name); err != nil {
		return nil, nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	var (
		baseline *pattern.Set
		units    []*pattern.Set
	)
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		if baseline, err = getSet(txn, baselineKey(name)); err != nil {
			return err
		}
		for _, k := range keysWithPrefix(txn, unitPrefix(name)) {
			u, err := getSet(txn, k)
			if err != nil {
				return err
			}
			units = append(units, u)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return baseline, units, nil
}
