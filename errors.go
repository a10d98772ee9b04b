// FILE: lixenwraith/kvconfig/errors.go
package kvconfig

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrUninitialized is returned by lookups on a store that has not loaded a file.
	ErrUninitialized = errors.New("configuration not initialized, call Init first")
	// ErrKeyNotFound is matched by every *KeyNotFoundError.
	ErrKeyNotFound = errors.New("configuration value not found")
	// ErrConfigNotFound is matched by a *FileAccessError for a missing file.
	ErrConfigNotFound = errors.New("configuration file not found")
	// ErrMalformedLine is matched by every *MalformedLineError.
	ErrMalformedLine = errors.New("malformed configuration line")
	// ErrFileTooLarge is wrapped when a file exceeds the store's size limit.
	ErrFileTooLarge = errors.New("configuration file too large")
)

// KeyNotFoundError reports a lookup of an absent key without a fallback.
type KeyNotFoundError struct {
	Key string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("configuration value not found [%s]", e.Key)
}

func (e *KeyNotFoundError) Is(target error) bool {
	return target == ErrKeyNotFound
}

// FileAccessError reports a configuration file that could not be opened or read.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("failed to read config file '%s': %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// Is matches ErrConfigNotFound when the underlying cause is a missing file.
func (e *FileAccessError) Is(target error) bool {
	return target == ErrConfigNotFound && errors.Is(e.Err, fs.ErrNotExist)
}

// MalformedLineError reports a non-blank, non-comment line without '='.
// Line is 1-based. Path is empty when parsing a plain reader.
type MalformedLineError struct {
	Path string
	Line int
	Text string
}

func (e *MalformedLineError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("malformed line %d: missing '=' in %q", e.Line, e.Text)
	}
	return fmt.Sprintf("malformed line %d in config file '%s': missing '=' in %q", e.Line, e.Path, e.Text)
}

func (e *MalformedLineError) Is(target error) bool {
	return target == ErrMalformedLine
}
