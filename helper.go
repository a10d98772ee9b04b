// File: lixenwraith/kvconfig/helper.go
package kvconfig

import "sort"

// sortedKeys returns the keys of data in ascending order.
func sortedKeys(data map[string]string) []string {
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// copyMap returns a shallow copy of data.
func copyMap(data map[string]string) map[string]string {
	out := make(map[string]string, len(data))
	for key, value := range data {
		out[key] = value
	}
	return out
}
