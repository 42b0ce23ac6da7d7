package util

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Logfile string `yaml:"logfile"`
	Store   struct {
		Driver string `yaml:"driver"`
	} `yaml:"store"`
}

func TestSampleAndLoad(t *testing.T) {

	path := filepath.Join(t.TempDir(), "hrquery.yaml")

	err := LoadConfig(&sample{}, path)
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	cfg := sample{Logfile: "hrquery.log"}
	cfg.Store.Driver = "sqlite"

	written, err := SampleConfig(cfg, path, 0644)
	require.NoError(t, err)
	assert.True(t, written)

	written, err = SampleConfig(sample{Logfile: "other.log"}, path, 0644)
	require.NoError(t, err)
	assert.False(t, written, "existing config kept")

	loaded := sample{}
	require.NoError(t, LoadConfig(&loaded, path))
	assert.Equal(t, cfg, loaded)

	t.Run("bad yaml", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(bad, []byte("store: [nope"), 0644))
		assert.ErrorContains(t, LoadConfig(&sample{}, bad), "failed to unmarshal")
	})
}

func TestOpenLog(t *testing.T) {

	assert.Equal(t, io.Discard, OpenLog("", 0644))

	path := filepath.Join(t.TempDir(), "test.log")
	file := OpenLog(path, 0644)
	_, err := file.Write([]byte("hello\n"))
	require.NoError(t, err)
	CloseLog(file)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))

	assert.Equal(t, io.Discard, OpenLog(filepath.Join(t.TempDir(), "no", "such", "dir.log"), 0644))
}
