package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateValues(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, cfg.ValidateValues())
	assert.Equal(t, "hci0", cfg.Values.Adapter)

	cfg.Values.Adapter = "hci12"
	require.NoError(t, cfg.ValidateValues())
	assert.Equal(t, "hci12", cfg.Values.Adapter)

	for _, name := range []string{"hci", "hci0/dev_AA", "/org/bluez/hci0", "AA:BB:CC:DD:EE:FF"} {
		cfg.Values.Adapter = name
		assert.Error(t, cfg.ValidateValues(), name)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bluescan.conf")
	require.NoError(t, os.WriteFile(path, []byte(`{
  # Scan with the second adapter.
  adapter: hci1
  no-progress: true
}`), 0o600))

	k, cfg := koanf.New("."), NewConfig()
	require.NoError(t, cfg.loadFile(k, path))
	require.NoError(t, cfg.unmarshal(k))

	assert.Equal(t, Values{Adapter: "hci1", NoProgress: true}, cfg.Values)
}

func TestLoadFileMissing(t *testing.T) {
	k, cfg := koanf.New("."), NewConfig()

	require.NoError(t, cfg.loadFile(k, ""))
	assert.Error(t, cfg.loadFile(k, filepath.Join(t.TempDir(), "missing.conf")))
}
