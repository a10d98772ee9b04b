// FILE: lixenwraith/kvconfig/decode.go
package kvconfig

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// TagName is the struct tag Scan reads keys from.
const TagName = "cfg"

// Scan copies the loaded values into target, which must be a non-nil pointer
// to a struct or a map[string]string. Struct fields are matched by their
// `cfg` tag, or case-insensitively by field name when untagged.
// Values stay strings: a key mapped to a non-string field is a decode error.
func (s *Store) Scan(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("scan target must be non-nil pointer, got %T", target)
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.state != StateLoaded {
		return ErrUninitialized
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          TagName,
		WeaklyTypedInput: false,
		ZeroFields:       false,
		Metadata:         nil,
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(s.data); err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}

	return nil
}
