// pkg/testutil/environment.go
// DEPENDENCIES: None (base test utilities)
// PURPOSE: Orchestrate test environments with storage roots and a filesystem

package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/vitex/pkg/filesystem"
	"github.com/arthur-debert/vitex/pkg/paths"
	"github.com/arthur-debert/vitex/pkg/types"
	"github.com/stretchr/testify/require"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment provides storage roots and a filesystem for one test
type TestEnvironment struct {
	ConfigDir string
	DataDir   string
	StateDir  string
	Roots     types.StorageRoots

	// DestDir is an existing directory new projects can be created in
	DestDir string

	FS   types.FS
	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment with both storage
// roots and the destination directory already created
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}

	base := "/virtual"
	switch envType {
	case EnvMemoryOnly:
		env.FS = filesystem.NewMemory()
	case EnvIsolated:
		base = t.TempDir()
		env.FS = filesystem.NewOS()
	}

	env.ConfigDir = filepath.Join(base, "config", "vitex")
	env.DataDir = filepath.Join(base, "data", "vitex")
	env.StateDir = filepath.Join(base, "state", "vitex")
	env.DestDir = filepath.Join(base, "projects")
	env.Roots = types.StorageRoots{
		CustomRoot: filepath.Join(env.ConfigDir, paths.CustomTemplatesDir),
		ClonedRoot: filepath.Join(env.DataDir, paths.ClonedTemplatesDir),
	}

	if envType == EnvIsolated {
		t.Setenv(paths.EnvVitexConfigDir, env.ConfigDir)
		t.Setenv(paths.EnvVitexDataDir, env.DataDir)
		t.Setenv(paths.EnvVitexStateDir, env.StateDir)
	}

	require.NoError(t, paths.EnsureStorageRoots(env.FS, env.Roots))
	require.NoError(t, env.FS.MkdirAll(env.DestDir, 0755))

	return env
}

// ReadFile reads a file, failing the test on error
func (env *TestEnvironment) ReadFile(path string) string {
	env.t.Helper()

	data, err := env.FS.ReadFile(path)
	require.NoError(env.t, err)
	return string(data)
}

// WriteFile writes a file and its parent directories, failing the test on error
func (env *TestEnvironment) WriteFile(path, content string) {
	env.t.Helper()

	require.NoError(env.t, env.FS.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(env.t, env.FS.WriteFile(path, []byte(content), 0644))
}
