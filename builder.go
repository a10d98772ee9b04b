// File: lixenwraith/kvconfig/builder.go
package kvconfig

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// ValidatorFunc defines the signature for a function that can validate a loaded Store.
// It runs after a successful load and should return an error if validation fails.
type ValidatorFunc func(s *Store) error

// Builder provides a fluent interface for creating and loading a Store
type Builder struct {
	file       string
	opts       []Option
	validators []ValidatorFunc
}

// NewBuilder creates a new store builder reading DefaultPath
func NewBuilder() *Builder {
	return &Builder{
		file:       DefaultPath,
		validators: make([]ValidatorFunc, 0),
	}
}

// WithFile sets the configuration file path
func (b *Builder) WithFile(path string) *Builder {
	b.file = path
	return b
}

// WithLogger sets the logger receiving load diagnostics
func (b *Builder) WithLogger(logger *zap.Logger) *Builder {
	b.opts = append(b.opts, WithLogger(logger))
	return b
}

// WithMaxFileSize limits the size of the configuration file in bytes
func (b *Builder) WithMaxFileSize(n int64) *Builder {
	b.opts = append(b.opts, WithMaxFileSize(n))
	return b
}

// WithStrict selects between aborting on (true) or skipping (false) malformed lines
func (b *Builder) WithStrict(strict bool) *Builder {
	b.opts = append(b.opts, WithStrict(strict))
	return b
}

// WithValidator adds a validation function that runs at the end of the build process
// Multiple validators can be added and are executed in the order they are added
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build creates the Store and loads the configured file.
// A missing file is not fatal: the unloaded store is returned together with
// an error matching ErrConfigNotFound. Any other load or validation error
// returns a nil store.
func (b *Builder) Build() (*Store, error) {
	store := New(b.opts...)

	if err := store.Init(b.file); err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			return store, err
		}
		return nil, err
	}

	for _, validator := range b.validators {
		if err := validator(store); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}

	return store, nil
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Store {
	store, err := b.Build()
	if err != nil {
		// Ignore ErrConfigNotFound, lookups on the store report ErrUninitialized.
		if !errors.Is(err, ErrConfigNotFound) {
			panic(fmt.Sprintf("config build failed: %v", err))
		}
	}
	return store
}

// RequireKeys returns a validator that fails when any of keys is absent.
func RequireKeys(keys ...string) ValidatorFunc {
	return func(s *Store) error {
		var missing []string
		for _, key := range keys {
			if !s.Has(key) {
				missing = append(missing, key)
			}
		}
		if len(missing) > 0 {
			return fmt.Errorf("%w: %s", ErrKeyNotFound, strings.Join(missing, ", "))
		}
		return nil
	}
}
