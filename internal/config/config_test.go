package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultIsReturnedForEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadOverlaysFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chesscore.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[perft]
table_size_mb = 64
enabled = false

[engine]
mode = "chess960"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 64, cfg.Perft.TableSizeMB)
	require.False(t, cfg.Perft.Enabled)
	require.Equal(t, "chess960", cfg.Engine.Mode)
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("this is not [ toml"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadRejectsUnknownMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad-mode.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[engine]
mode = "freestyle"
`), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadRejectsNonPositiveTableSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad-size.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[perft]
table_size_mb = 0
`), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
