// FILE: lixenwraith/kvconfig/dump.go
package kvconfig

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format selects the encoding used by Dump.
type Format string

const (
	// FormatKV writes the native "key = value" format, readable by Init.
	FormatKV Format = "kv"
	// FormatTOML writes a flat TOML table of string values.
	FormatTOML Format = "toml"
	// FormatYAML writes a flat YAML mapping.
	FormatYAML Format = "yaml"
	// FormatJSON writes an indented JSON object.
	FormatJSON Format = "json"
)

// ParseFormat maps a format name or file extension to a Format.
// An empty name selects FormatKV.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "", "kv", "cfg", "conf":
		return FormatKV, nil
	case "toml", "tml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported dump format %q", name)
	}
}

// Dump writes the loaded snapshot to w in the given format.
// Keys are written in sorted order.
func (s *Store) Dump(w io.Writer, format Format) error {
	snapshot, err := s.Snapshot()
	if err != nil {
		return err
	}

	switch format {
	case FormatKV, "":
		for _, key := range sortedKeys(snapshot) {
			if _, err := fmt.Fprintf(w, "%s = %s\n", key, snapshot[key]); err != nil {
				return fmt.Errorf("failed to write config data: %w", err)
			}
		}
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(snapshot); err != nil {
			return fmt.Errorf("failed to marshal config data to TOML: %w", err)
		}
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(snapshot); err != nil {
			return fmt.Errorf("failed to marshal config data to YAML: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("failed to flush YAML encoder: %w", err)
		}
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(snapshot); err != nil {
			return fmt.Errorf("failed to marshal config data to JSON: %w", err)
		}
	default:
		return fmt.Errorf("unsupported dump format %q", format)
	}

	return nil
}
