// pkg/config/loader_test.go
// TEST TYPE: Business Logic Integration
// DEPENDENCIES: Memory FS
// PURPOSE: Test configuration loading, defaults and validation

package config_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/vitex/pkg/config"
	"github.com/arthur-debert/vitex/pkg/errors"
	"github.com/arthur-debert/vitex/pkg/testutil"
	"github.com/arthur-debert/vitex/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configPath(env *testutil.TestEnvironment) string {
	return filepath.Join(env.ConfigDir, "config.toml")
}

func TestLoad_MissingFileCreatesDefault(t *testing.T) {
	t.Setenv("VITEX_AUTHOR", "")
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	path := filepath.Join(env.ConfigDir, "fresh", "config.toml")

	cfg, err := config.Load(env.FS, path)
	require.NoError(t, err)

	assert.True(t, cfg.Created)
	assert.Equal(t, path, cfg.Path)
	require.Len(t, cfg.Templates, 1)
	assert.Equal(t, "default", cfg.Templates[0].ID)
	require.NotNil(t, cfg.Templates[0].Git)
	assert.Equal(t, "git@github.com/foo/bar", cfg.Templates[0].Git.Repository)

	// The default was written and loads again without being recreated
	assert.Equal(t, string(config.DefaultContent()), env.ReadFile(path))
	again, err := config.Load(env.FS, path)
	require.NoError(t, err)
	assert.False(t, again.Created)
	assert.Equal(t, cfg.Registry(), again.Registry())
}

func TestLoad_LocalAndGitTemplates(t *testing.T) {
	t.Setenv("VITEX_AUTHOR", "")
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WriteFile(configPath(env), `
author = "Jane Doe"

[[templates]]
id = "letter"

[[templates]]
id = "normal"
[templates.git]
repository = "https://example.com/r.git"
path_prefix = "templates/normal"

[[templates]]
id = "beamer"
[templates.git]
repository = "https://example.com/b.git"
`)

	cfg, err := config.Load(env.FS, configPath(env))
	require.NoError(t, err)

	assert.False(t, cfg.Created)
	assert.Equal(t, "Jane Doe", cfg.Author)
	assert.Equal(t, types.Registry{
		types.NewLocalTemplate("letter"),
		types.NewGitTemplate("normal", "https://example.com/r.git", "templates/normal"),
		types.NewGitTemplate("beamer", "https://example.com/b.git", ""),
	}, cfg.Registry())
}

func TestLoad_EmptyGitTableIsLocal(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WriteFile(configPath(env), `
[[templates]]
id = "letter"
[templates.git]
repository = ""
`)

	cfg, err := config.Load(env.FS, configPath(env))
	require.NoError(t, err)

	registry := cfg.Registry()
	require.Len(t, registry, 1)
	assert.Equal(t, types.SourcingLocal, registry[0].Mode())
}

func TestLoad_TrimsWhitespace(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WriteFile(configPath(env), `
[[templates]]
id = "  letter "
`)

	cfg, err := config.Load(env.FS, configPath(env))
	require.NoError(t, err)
	assert.Equal(t, []string{"letter"}, cfg.Registry().IDs())
}

func TestLoad_EnvOverridesAuthor(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WriteFile(configPath(env), `
author = "From File"
templates = []
`)

	t.Setenv("VITEX_AUTHOR", "From Env")
	cfg, err := config.Load(env.FS, configPath(env))
	require.NoError(t, err)
	assert.Equal(t, "From Env", cfg.Author)

	t.Setenv("VITEX_AUTHOR", "")
	cfg, err = config.Load(env.FS, configPath(env))
	require.NoError(t, err)
	assert.Equal(t, "From File", cfg.Author)
}

func TestLoad_IgnoresUnrelatedEnv(t *testing.T) {
	t.Setenv("VITEX_AUTHOR", "")
	t.Setenv("VITEX_TEMPLATES", "not-a-list")
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WriteFile(configPath(env), `
[[templates]]
id = "letter"
`)

	cfg, err := config.Load(env.FS, configPath(env))
	require.NoError(t, err)
	assert.Equal(t, []string{"letter"}, cfg.Registry().IDs())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantCode errors.ErrorCode
	}{
		{
			name:     "malformed toml",
			content:  `[[templates]`,
			wantCode: errors.ErrConfigParse,
		},
		{
			name: "duplicate id",
			content: `
[[templates]]
id = "letter"
[[templates]]
id = "letter"
[templates.git]
repository = "https://example.com/r.git"
`,
			wantCode: errors.ErrDuplicateID,
		},
		{
			name: "empty id",
			content: `
[[templates]]
id = ""
`,
			wantCode: errors.ErrInvalidInput,
		},
		{
			name: "missing id",
			content: `
[[templates]]
[templates.git]
repository = "https://example.com/r.git"
`,
			wantCode: errors.ErrInvalidInput,
		},
		{
			name: "path prefix without repository",
			content: `
[[templates]]
id = "normal"
[templates.git]
path_prefix = "templates/normal"
`,
			wantCode: errors.ErrConfigValid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
			env.WriteFile(configPath(env), tt.content)

			_, err := config.Load(env.FS, configPath(env))

			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.wantCode), "got %v", err)
		})
	}
}

func TestLoad_UnreadableFile(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	// A directory where the file should be
	require.NoError(t, env.FS.MkdirAll(configPath(env), 0755))

	_, err := config.Load(env.FS, configPath(env))

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}
