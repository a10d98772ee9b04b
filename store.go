// FILE: lixenwraith/kvconfig/store.go
package kvconfig

import (
	"sync"

	"go.uber.org/zap"

	"github.com/lixenwraith/kvconfig/internal/logging"
)

// State describes whether a Store holds a usable snapshot.
type State int

const (
	// StateUninitialized is a store that has not attempted a load.
	StateUninitialized State = iota
	// StateLoaded is a store holding a snapshot. It never changes again.
	StateLoaded
	// StateFailed is a store whose last load attempt failed. Lookups behave
	// as in StateUninitialized and Init may be retried.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Store holds a single key-value snapshot loaded from a configuration file.
// The zero value is not usable; create stores with New or a Builder.
type Store struct {
	data  map[string]string
	state State
	path  string

	logger      *zap.Logger
	maxFileSize int64
	strict      bool

	mutex sync.RWMutex
}

// Option configures a Store created by New.
type Option func(*Store)

// WithLogger sets the logger receiving load diagnostics. A nil logger discards them.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger == nil {
			logger = zap.NewNop()
		}
		s.logger = logger
	}
}

// WithMaxFileSize rejects files larger than n bytes. Zero or less disables the check.
func WithMaxFileSize(n int64) Option {
	return func(s *Store) {
		s.maxFileSize = n
	}
}

// WithStrict controls malformed line handling. Strict stores (the default)
// abort the load on the first line without '='; lenient stores skip such
// lines with a warning.
func WithStrict(strict bool) Option {
	return func(s *Store) {
		s.strict = strict
	}
}

// New creates an uninitialized Store.
func New(opts ...Option) *Store {
	s := &Store{
		state:  StateUninitialized,
		logger: logging.Stderr(),
		strict: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the value stored for key.
// It fails with ErrUninitialized until a load succeeds and with a
// *KeyNotFoundError when the key is absent.
func (s *Store) Get(key string) (string, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.state != StateLoaded {
		return "", ErrUninitialized
	}

	value, ok := s.data[key]
	if !ok {
		return "", &KeyNotFoundError{Key: key}
	}
	return value, nil
}

// GetOr returns the value stored for key, or fallback when the key is absent.
// An unloaded store still fails with ErrUninitialized.
func (s *Store) GetOr(key, fallback string) (string, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.state != StateLoaded {
		return "", ErrUninitialized
	}

	if value, ok := s.data[key]; ok {
		return value, nil
	}
	return fallback, nil
}

// Lookup returns the value for key and whether it was found.
// An unloaded store reports every key as missing.
func (s *Store) Lookup(key string) (string, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.state != StateLoaded {
		return "", false
	}
	value, ok := s.data[key]
	return value, ok
}

// Has reports whether key is present in the loaded snapshot.
func (s *Store) Has(key string) bool {
	_, ok := s.Lookup(key)
	return ok
}

// Keys returns the loaded keys in sorted order.
func (s *Store) Keys() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.state != StateLoaded {
		return nil
	}

	return sortedKeys(s.data)
}

// Len returns the number of loaded keys.
func (s *Store) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.data)
}

// Snapshot returns a copy of the loaded mapping.
func (s *Store) Snapshot() (map[string]string, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.state != StateLoaded {
		return nil, ErrUninitialized
	}

	return copyMap(s.data), nil
}

// State returns the store's load state.
func (s *Store) State() State {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.state
}

// Loaded reports whether the store holds a snapshot.
func (s *Store) Loaded() bool {
	return s.State() == StateLoaded
}

// Path returns the file the snapshot was loaded from, or "" if not loaded.
func (s *Store) Path() string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.path
}
