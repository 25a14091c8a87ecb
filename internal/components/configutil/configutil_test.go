package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	BaseUrl     string            `json:"base_url"`
	Concurrency int               `json:"concurrency"`
	Hardware    map[string]string `json:"hardware"`
}

func TestLocalPath(t *testing.T) {
	require.Equal(t, "gcmatome.local.json5", LocalPath("gcmatome.json5"))
	require.Equal(t, filepath.Join("dir", "x.local.json5"), LocalPath(filepath.Join("dir", "x.json5")))
	require.Equal(t, "config.local", LocalPath("config"))
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "gcmatome.json5")

	_, err := ReadConfig[testConfig](name)
	require.ErrorIs(t, err, os.ErrNotExist)

	err = os.WriteFile(name, []byte(`{
		// comments and trailing commas are allowed
		base_url: "https://w.atwiki.jp/gcmatome/",
		concurrency: 4,
		hardware: { switch: "6695" },
	}`), 0600)
	require.NoError(t, err)

	cfg, err := ReadConfig[testConfig](name)
	require.NoError(t, err)
	require.Equal(t, "https://w.atwiki.jp/gcmatome/", cfg.BaseUrl)
	require.Equal(t, 4, cfg.Concurrency)

	err = os.WriteFile(LocalPath(name), []byte(`{ concurrency: 8, hardware: { ps5: "9999" } }`), 0600)
	require.NoError(t, err)

	cfg, err = ReadConfig[testConfig](name)
	require.NoError(t, err)
	require.Equal(t, "https://w.atwiki.jp/gcmatome/", cfg.BaseUrl)
	require.Equal(t, 8, cfg.Concurrency)
	require.Equal(t, "9999", cfg.Hardware["ps5"])
	require.Equal(t, "6695", cfg.Hardware["switch"])
}

func TestReadConfigInvalid(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "broken.json5")
	require.NoError(t, os.WriteFile(name, []byte(`{ concurrency: `), 0600))

	_, err := ReadConfig[testConfig](name)
	require.Error(t, err)
}
