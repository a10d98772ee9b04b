// FILE: lixenwraith/kvconfig/convenience.go
package kvconfig

import (
	"fmt"
	"strings"
)

// DefaultPath is the file Init reads when given an empty path.
const DefaultPath = "app.cfg"

// defaultStore backs the package-level functions.
var defaultStore = New()

// Default returns the process-wide store used by InitConfig and GetConfigValue.
func Default() *Store {
	return defaultStore
}

// InitConfig loads path into the process-wide store. See Store.Init.
func InitConfig(path string) error {
	return defaultStore.Init(path)
}

// GetConfigValue looks key up in the process-wide store. See Store.Get.
func GetConfigValue(key string) (string, error) {
	return defaultStore.Get(key)
}

// GetConfigValueOr looks key up in the process-wide store, falling back to def.
// See Store.GetOr.
func GetConfigValueOr(key, def string) (string, error) {
	return defaultStore.GetOr(key, def)
}

// Debug returns a formatted string showing the store state and all values.
func (s *Store) Debug() string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var b strings.Builder
	b.WriteString("Configuration Debug Info:\n")
	b.WriteString(fmt.Sprintf("State: %s\n", s.state))
	if s.path != "" {
		b.WriteString(fmt.Sprintf("File: %s\n", s.path))
	}
	if s.state != StateLoaded {
		return b.String()
	}

	b.WriteString(fmt.Sprintf("Values (%d):\n", len(s.data)))
	for _, key := range sortedKeys(s.data) {
		b.WriteString(fmt.Sprintf("  %s = %s\n", key, s.data[key]))
	}

	return b.String()
}
