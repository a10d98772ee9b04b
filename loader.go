// FILE: lixenwraith/kvconfig/loader.go
package kvconfig

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// Init loads the configuration file at path into the store.
// An empty path means DefaultPath.
//
// A store loads at most once: after a successful load every call returns nil
// without touching path. A failed load leaves the store unusable for lookups,
// logs the path and cause, and returns a *FileAccessError or
// *MalformedLineError. The caller may ignore the error and let lookups fail
// with ErrUninitialized, or retry with another path.
func (s *Store) Init(path string) error {
	if path == "" {
		path = DefaultPath
	}

	s.mutex.RLock()
	loaded := s.state == StateLoaded
	s.mutex.RUnlock()
	if loaded {
		return nil
	}

	// Read and parse without holding the lock
	data, err := s.readFile(path)

	s.mutex.Lock()
	defer s.mutex.Unlock()

	// Another Init may have committed while this one was reading
	if s.state == StateLoaded {
		return nil
	}

	if err != nil {
		s.state = StateFailed
		s.data = nil
		s.logger.Error("failed to load config file", zap.String("path", path), zap.Error(err))
		return err
	}

	s.data = data
	s.path = path
	s.state = StateLoaded
	s.logger.Debug("config file loaded", zap.String("path", path), zap.Int("keys", len(data)))
	return nil
}

// readFile opens, size-checks and parses a configuration file.
// The file is closed on every return path.
func (s *Store) readFile(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	defer file.Close()

	var reader io.Reader = file
	if s.maxFileSize > 0 {
		info, err := file.Stat()
		if err != nil {
			return nil, &FileAccessError{Path: path, Err: err}
		}
		if info.Size() > s.maxFileSize {
			return nil, &FileAccessError{
				Path: path,
				Err:  fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrFileTooLarge, info.Size(), s.maxFileSize),
			}
		}
		reader = io.LimitReader(file, s.maxFileSize)
	}

	var onMalformed func(*MalformedLineError)
	if !s.strict {
		onMalformed = func(m *MalformedLineError) {
			s.logger.Warn("skipping malformed config line",
				zap.String("path", path),
				zap.Int("line", m.Line),
				zap.String("text", m.Text))
		}
	}

	data, err := parseLines(reader, onMalformed)
	if err != nil {
		var malformed *MalformedLineError
		if errors.As(err, &malformed) {
			malformed.Path = path
			return nil, malformed
		}
		return nil, &FileAccessError{Path: path, Err: err}
	}

	return data, nil
}
