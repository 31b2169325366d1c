package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xcpp-labs/xcpp/internal/config"
	"github.com/xcpp-labs/xcpp/internal/resolve"
)

type stubInit struct{ calls int }

func (s *stubInit) Init(context.Context, string) (string, error) {
	s.calls++
	return "", nil
}

type testEnv struct {
	configDir string
	workDir   string
	toolchain string
	git       *stubInit
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		configDir: t.TempDir(),
		workDir:   t.TempDir(),
		toolchain: t.TempDir(),
		git:       &stubInit{},
	}
	t.Setenv("XCPP_CONFIG_DIR", env.configDir)
	t.Setenv("XCPP_LOG", "")
	return env
}

func (e *testEnv) run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd(&app{
		build:       buildInfo{version: "1.2.3", commit: "abc", date: "today"},
		openStore:   config.DefaultStore,
		initializer: e.git,
	})
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestNew_ExplicitFlags(t *testing.T) {
	env := setupTestEnv(t)

	stdout, _, err := env.run(t, "new", "hello_cpp", "--std=c++17", "--path="+env.toolchain, "--dir="+env.workDir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "main.cpp")
	assert.Contains(t, stdout, "(9 files)")
	assert.Equal(t, 1, env.git.calls)

	props, err := os.ReadFile(filepath.Join(env.workDir, "hello_cpp", ".vscode", "c_cpp_properties.json"))
	require.NoError(t, err)
	assert.Contains(t, string(props), `"cppStandard": "c++17"`)
}

func TestNew_InvalidStd(t *testing.T) {
	env := setupTestEnv(t)

	_, _, err := env.run(t, "new", "hello_cpp", "--std=c++18")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'c++18' isn't a valid value for '--std'")
}

func TestNew_UsesStoredDefaults(t *testing.T) {
	env := setupTestEnv(t)

	_, _, err := env.run(t, "store", "--std=c++20", "--path="+env.toolchain)
	require.NoError(t, err)

	_, stderr, err := env.run(t, "new", "proj", "--dir="+env.workDir)
	require.NoError(t, err)
	assert.Contains(t, stderr, "using stored default")

	makefile, err := os.ReadFile(filepath.Join(env.workDir, "proj", "makefile"))
	require.NoError(t, err)
	assert.Contains(t, string(makefile), "-std=c++20")
}

func TestNew_NoStoredPath(t *testing.T) {
	env := setupTestEnv(t)

	_, _, err := env.run(t, "new", "proj", "--std=c++11", "--dir="+env.workDir)
	require.ErrorIs(t, err, resolve.ErrMissingToolchainPath)
}

func TestNew_NoStoredStd(t *testing.T) {
	env := setupTestEnv(t)

	_, _, err := env.run(t, "new", "proj", "--dir="+env.workDir)
	require.ErrorIs(t, err, resolve.ErrInvalidStandard)
}

func TestNew_ToolchainMissing(t *testing.T) {
	env := setupTestEnv(t)

	missing := filepath.Join(env.toolchain, "nope")
	_, _, err := env.run(t, "new", "proj", "--std=c++11", "--path="+missing, "--dir="+env.workDir)
	require.ErrorIs(t, err, resolve.ErrToolchainNotFound)

	_, statErr := os.Stat(filepath.Join(env.workDir, "proj"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestNew_DestinationExists(t *testing.T) {
	env := setupTestEnv(t)
	require.NoError(t, os.Mkdir(filepath.Join(env.workDir, "proj"), 0o755))

	_, _, err := env.run(t, "new", "proj", "--std=c++11", "--path="+env.toolchain, "--dir="+env.workDir)
	require.ErrorIs(t, err, resolve.ErrDestinationExists)
	assert.Zero(t, env.git.calls)
}

func TestStore_RejectsSentinel(t *testing.T) {
	env := setupTestEnv(t)

	_, _, err := env.run(t, "store", "--std=cfg", "--path=/tc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'cfg' isn't a valid value for '--std'")
}

func TestStore_RequiresFlags(t *testing.T) {
	env := setupTestEnv(t)

	_, _, err := env.run(t, "store", "--std=c++17")
	assert.ErrorContains(t, err, "path")
}

func TestStore_NormalizesPath(t *testing.T) {
	env := setupTestEnv(t)

	_, _, err := env.run(t, "store", "--std=c++14", `--path=E:\Environment\mingw64\bin`)
	require.NoError(t, err)

	s, err := config.DefaultStore()
	require.NoError(t, err)
	rec, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, config.Record{Std: "c++14", ToolchainPath: "E:/Environment/mingw64/bin"}, rec)
}

func TestClear(t *testing.T) {
	env := setupTestEnv(t)

	_, _, err := env.run(t, "clear")
	require.ErrorIs(t, err, config.ErrNotFound)

	_, _, err = env.run(t, "store", "--std=c++17", "--path=/tc")
	require.NoError(t, err)

	stdout, _, err := env.run(t, "clear")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Deleted")

	stdout, _, err = env.run(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No saved defaults")
}

func TestConfigShowAndPath(t *testing.T) {
	env := setupTestEnv(t)

	_, _, err := env.run(t, "store", "--std=c++23", "--path=/opt/mingw/bin")
	require.NoError(t, err)

	stdout, _, err := env.run(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "std:  c++23")
	assert.Contains(t, stdout, "path: /opt/mingw/bin")

	stdout, _, err = env.run(t, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(env.configDir, "config.yaml")+"\n", stdout)
}

func TestVersion(t *testing.T) {
	env := setupTestEnv(t)

	stdout, _, err := env.run(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3\n", stdout)

	stdout, _, err = env.run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "xcpp version 1.2.3 (commit: abc, built: today)\n", stdout)

	stdout, _, err = env.run(t, "version", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"1.2.3","commit":"abc","date":"today"}`, stdout)
}
