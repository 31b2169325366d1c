package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "xcpp", "config.yaml"))
}

func TestDir_EnvOverride(t *testing.T) {
	t.Setenv("XCPP_CONFIG_DIR", "/tmp/xcpp-test")
	dir, err := Dir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/xcpp-test", dir)

	path, err := FilePath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/xcpp-test/config.yaml", path)
}

func TestDir_Default(t *testing.T) {
	t.Setenv("XCPP_CONFIG_DIR", "")
	base, err := os.UserConfigDir()
	if err != nil {
		t.Skipf("no user config dir: %v", err)
	}
	dir, err := Dir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "xcpp"), dir)
}

func TestLoad_Missing(t *testing.T) {
	s := newTestStore(t)
	rec, err := s.Load()
	require.NoError(t, err)
	assert.True(t, rec.IsZero())
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	want := Record{Std: "c++17", ToolchainPath: "E:/Environment/mingw64 14/bin"}

	require.NoError(t, s.Save(want))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSave_Overwrites(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save(Record{Std: "c++11", ToolchainPath: "/old"}))
	require.NoError(t, s.Save(Record{Std: "c++20", ToolchainPath: "/new"}))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, Record{Std: "c++20", ToolchainPath: "/new"}, got)

	// No temporary files are left next to the record.
	entries, err := os.ReadDir(filepath.Dir(s.Path()))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLoad_Malformed(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(s.Path()), 0o755))
	require.NoError(t, os.WriteFile(s.Path(), []byte("std: [unclosed\n"), 0o644))

	_, err := s.Load()
	assert.Error(t, err)
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)

	err := s.Delete()
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), s.Path())

	require.NoError(t, s.Save(Record{Std: "c++14", ToolchainPath: "/tc"}))
	require.NoError(t, s.Delete())

	rec, err := s.Load()
	require.NoError(t, err)
	assert.True(t, rec.IsZero())

	assert.ErrorIs(t, s.Delete(), ErrNotFound)
}
