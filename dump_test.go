// FILE: lixenwraith/kvconfig/dump_test.go
package kvconfig

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestDump tests every output format against its decoder
func TestDump(t *testing.T) {
	path := writeConfig(t, "app.cfg", "port = 8080\nhost = localhost\ndb.url = postgres://db?a=b\nempty =\n")
	store := New(WithLogger(nil))
	require.NoError(t, store.Init(path))

	want := map[string]string{
		"port":   "8080",
		"host":   "localhost",
		"db.url": "postgres://db?a=b",
		"empty":  "",
	}

	t.Run("KV", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, store.Dump(&buf, FormatKV))
		assert.Equal(t, "db.url = postgres://db?a=b\nempty = \nhost = localhost\nport = 8080\n", buf.String())

		parsed, err := Parse(&buf)
		require.NoError(t, err)
		assert.Equal(t, want, parsed)
	})

	t.Run("TOML", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, store.Dump(&buf, FormatTOML))

		var decoded map[string]string
		_, err := toml.Decode(buf.String(), &decoded)
		require.NoError(t, err)
		assert.Equal(t, want, decoded)
	})

	t.Run("YAML", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, store.Dump(&buf, FormatYAML))

		var decoded map[string]string
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, want, decoded)
	})

	t.Run("JSON", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, store.Dump(&buf, FormatJSON))

		var decoded map[string]string
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, want, decoded)
	})

	t.Run("UnsupportedFormat", func(t *testing.T) {
		var buf bytes.Buffer
		err := store.Dump(&buf, Format("xml"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported dump format")
	})
}

// TestDumpUninitialized tests dumping an unloaded store
func TestDumpUninitialized(t *testing.T) {
	var buf bytes.Buffer
	err := New(WithLogger(nil)).Dump(&buf, FormatKV)
	assert.ErrorIs(t, err, ErrUninitialized)
	assert.Zero(t, buf.Len())
}

// TestParseFormat tests format name resolution
func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{"", FormatKV, false},
		{"kv", FormatKV, false},
		{".cfg", FormatKV, false},
		{"TOML", FormatTOML, false},
		{".tml", FormatTOML, false},
		{"yml", FormatYAML, false},
		{"yaml", FormatYAML, false},
		{"json", FormatJSON, false},
		{"ini", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
