// pkg/templates/instantiate_test.go
// TEST TYPE: Business Logic Integration
// DEPENDENCIES: Memory FS, OS FS
// PURPOSE: Test template copying and placeholder substitution

package templates_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/vitex/pkg/errors"
	"github.com/arthur-debert/vitex/pkg/filesystem"
	"github.com/arthur-debert/vitex/pkg/templates"
	"github.com/arthur-debert/vitex/pkg/testutil"
	"github.com/arthur-debert/vitex/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Thesis", "Thesis"},
		{"My Paper", "My_Paper"},
		{"My Paper/Draft", "My_Paper_Draft"},
		{"tabs\tand\nnewlines", "tabs_and_newlines"},
		{"  padded  ", "__padded__"},
		{"Ünïcödé Tïtle", "Ünïcödé_Tïtle"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got := templates.SanitizeTitle(tt.title)

			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "/")
			assert.NotContains(t, got, " ")
		})
	}
}

func TestSubstitute(t *testing.T) {
	out := templates.Substitute(testutil.ValidMarker, types.SubstitutionContext{
		Title:  "Thesis",
		Author: "Jane Doe",
	})

	assert.Contains(t, out, `\newcommand{\doctitle}{Thesis}`)
	assert.Contains(t, out, `\newcommand{\docsubtitle}{Thesis}`)
	assert.Contains(t, out, `\newcommand{\docauthor}{Jane Doe}`)
	for _, token := range types.Placeholders {
		assert.NotContains(t, out, token)
	}
}

func TestSubstitute_ReplacesEveryOccurrence(t *testing.T) {
	in := "VITEX_TITLE_PLACEHOLDER / VITEX_TITLE_PLACEHOLDER / VITEX_SUBTITLE_PLACEHOLDER"

	out := templates.Substitute(in, types.SubstitutionContext{Title: "T", Subtitle: "S"})

	assert.Equal(t, "T / T / S", out)
}

func TestInstantiate_GitScenario(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	fixture := env.GitTemplate("normal", repo, "templates/normal").
		WithConfigTex(testutil.ValidMarker).
		WithMainTex(`\input{preamble/config.tex}`).
		WithFile("chapters/intro.tex", `\chapter{Intro}`)

	content, err := templates.NewValidator(env.FS).Validate(fixture.Entry, env.Roots)
	require.NoError(t, err)

	result, err := templates.NewInstantiator(env.FS).Instantiate(content, env.DestDir, types.SubstitutionContext{
		Title:  "Thesis",
		Author: "Jane Doe",
	})
	require.NoError(t, err)

	dest := filepath.Join(env.DestDir, "Thesis")
	assert.Equal(t, dest, result.Path)
	assert.Equal(t, filepath.Join(dest, "preamble", "config.tex"), result.MarkerFile)
	assert.Empty(t, result.Warnings)

	config := env.ReadFile(filepath.Join(dest, "preamble", "config.tex"))
	assert.Contains(t, config, "Thesis")
	assert.Contains(t, config, "Jane Doe")
	for _, token := range types.Placeholders {
		assert.NotContains(t, config, token)
	}

	// Everything else is copied verbatim
	assert.Equal(t, `\input{preamble/config.tex}`, env.ReadFile(filepath.Join(dest, "main.tex")))
	assert.Equal(t, `\chapter{Intro}`, env.ReadFile(filepath.Join(dest, "chapters", "intro.tex")))

	// The template itself is untouched
	assert.Equal(t, testutil.ValidMarker, env.ReadFile(filepath.Join(fixture.Dir, "preamble", "config.tex")))
}

func TestInstantiate_FallbackMarker(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	fixture := env.LocalTemplate("letter").WithMainTex(testutil.ValidMarker)

	result, err := templates.NewInstantiator(env.FS).Instantiate(
		templates.Resolve(fixture.Entry, env.Roots),
		env.DestDir,
		types.SubstitutionContext{Title: "Cover Letter", Subtitle: "For ACME", Author: "Jane Doe"},
	)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(env.DestDir, "Cover_Letter"), result.Path)
	main := env.ReadFile(filepath.Join(result.Path, "main.tex"))
	assert.Contains(t, main, `{Cover Letter}`)
	assert.Contains(t, main, `{For ACME}`)
	assert.Contains(t, main, `{Jane Doe}`)
}

func TestInstantiate_DestinationExists(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	fixture := env.LocalTemplate("letter").
		WithMainTex(testutil.ValidMarker).
		WithFile("extra.tex", "extra")
	existing := filepath.Join(env.DestDir, "Thesis")
	env.WriteFile(filepath.Join(existing, "notes.txt"), "keep me")

	_, err := templates.NewInstantiator(env.FS).Instantiate(
		templates.Resolve(fixture.Entry, env.Roots),
		env.DestDir,
		types.SubstitutionContext{Title: "Thesis", Author: "Jane Doe"},
	)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDestinationExists))
	assert.Equal(t, existing, errors.GetErrorDetails(err)["path"])

	// Nothing was written into the existing directory
	entries, err := env.FS.ReadDir(existing)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "notes.txt", entries[0].Name())
	assert.Equal(t, "keep me", env.ReadFile(filepath.Join(existing, "notes.txt")))
}

func TestInstantiate_NoMarkerIsAWarning(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	fixture := env.LocalTemplate("bare").WithFile("README.md", "# bare")

	result, err := templates.NewInstantiator(env.FS).Instantiate(
		templates.Resolve(fixture.Entry, env.Roots),
		env.DestDir,
		types.SubstitutionContext{Title: "Bare", Author: "Jane Doe"},
	)

	require.NoError(t, err)
	assert.Empty(t, result.MarkerFile)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "bare")
	assert.Equal(t, "# bare", env.ReadFile(filepath.Join(result.Path, "README.md")))
}

func TestInstantiate_CreatesMissingDestinationParent(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	fixture := env.LocalTemplate("letter").WithMainTex(testutil.ValidMarker)
	parent := filepath.Join(env.DestDir, "not", "yet")

	result, err := templates.NewInstantiator(env.FS).Instantiate(
		templates.Resolve(fixture.Entry, env.Roots),
		parent,
		types.SubstitutionContext{Title: "Thesis", Author: "Jane Doe"},
	)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(parent, "Thesis"), result.Path)
}

func TestInstantiate_InvalidTitle(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	fixture := env.LocalTemplate("letter").WithMainTex(testutil.ValidMarker)

	for _, title := range []string{"", ".", ".."} {
		_, err := templates.NewInstantiator(env.FS).Instantiate(
			templates.Resolve(fixture.Entry, env.Roots),
			env.DestDir,
			types.SubstitutionContext{Title: title},
		)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), "title %q", title)
	}
}

func TestInstantiate_CopyFailed(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	// The content directory vanished between validation and copy
	content := types.ContentDirectory{
		Path:  filepath.Join(env.Roots.CustomRoot, "gone"),
		Entry: types.NewLocalTemplate("gone"),
	}

	_, err := templates.NewInstantiator(env.FS).Instantiate(content, env.DestDir, types.SubstitutionContext{Title: "Thesis"})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCopyFailed))
	assert.Equal(t, content.Path, errors.GetErrorDetails(err)["path"])
}

func TestInstantiate_OSFilesystemPreservesModes(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	fixture := env.LocalTemplate("letter").WithConfigTex(testutil.ValidMarker)

	script := filepath.Join(fixture.Dir, "build.sh")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\nlatexmk\n"), 0755))

	result, err := templates.NewInstantiator(filesystem.NewOS()).Instantiate(
		templates.Resolve(fixture.Entry, env.Roots),
		env.DestDir,
		types.SubstitutionContext{Title: "Thesis", Author: "Jane Doe"},
	)
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(result.Path, "build.sh"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())

	config, err := os.ReadFile(filepath.Join(result.Path, "preamble", "config.tex"))
	require.NoError(t, err)
	assert.Contains(t, string(config), "Jane Doe")
}

// failingFS fails reads or writes of a single path
type failingFS struct {
	types.FS
	path      string
	readFail  bool
	writeFail bool
}

func (f *failingFS) ReadFile(name string) ([]byte, error) {
	if f.readFail && name == f.path {
		return nil, os.ErrPermission
	}
	return f.FS.ReadFile(name)
}

func (f *failingFS) WriteFile(name string, data []byte, perm os.FileMode) error {
	if f.writeFail && name == f.path {
		return os.ErrPermission
	}
	return f.FS.WriteFile(name, data, perm)
}

func TestInstantiate_BlankTitle(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	fixture := env.LocalTemplate("letter").WithMainTex(testutil.ValidMarker)

	_, err := templates.NewInstantiator(env.FS).Instantiate(
		templates.Resolve(fixture.Entry, env.Roots),
		env.DestDir,
		types.SubstitutionContext{Title: "   "},
	)

	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	exists, statErr := filesystem.Exists(env.FS, filepath.Join(env.DestDir, "___"))
	require.NoError(t, statErr)
	assert.False(t, exists)
}

func TestInstantiate_DestinationInsideTemplate(t *testing.T) {
	tests := []struct {
		name    string
		envType testutil.EnvType
		parent  func(dir string) string
	}{
		{"memory template root", testutil.EnvMemoryOnly, func(dir string) string { return dir }},
		{"memory nested", testutil.EnvMemoryOnly, func(dir string) string { return filepath.Join(dir, "chapters") }},
		{"os template root", testutil.EnvIsolated, func(dir string) string { return dir }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := testutil.NewTestEnvironment(t, tt.envType)
			fixture := env.LocalTemplate("letter").
				WithMainTex(testutil.ValidMarker).
				WithFile("chapters/intro.tex", `\chapter{Intro}`)
			parent := tt.parent(fixture.Dir)

			_, err := templates.NewInstantiator(env.FS).Instantiate(
				templates.Resolve(fixture.Entry, env.Roots),
				parent,
				types.SubstitutionContext{Title: "T"},
			)

			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
			assert.Equal(t, filepath.Join(parent, "T"), errors.GetErrorDetails(err)["path"])
			assert.Equal(t, "letter", errors.GetErrorDetails(err)["id"])

			// The template was not written to
			exists, statErr := filesystem.Exists(env.FS, filepath.Join(parent, "T"))
			require.NoError(t, statErr)
			assert.False(t, exists)
		})
	}
}

func TestInstantiate_SiblingOfTemplateIsAllowed(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	fixture := env.LocalTemplate("letter").WithMainTex(testutil.ValidMarker)

	// "letter_copy" shares a name prefix with the template but is not inside it
	result, err := templates.NewInstantiator(env.FS).Instantiate(
		templates.Resolve(fixture.Entry, env.Roots),
		env.Roots.CustomRoot,
		types.SubstitutionContext{Title: "letter copy"},
	)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(env.Roots.CustomRoot, "letter_copy"), result.Path)
}

func TestInstantiate_SubstitutionWriteFailed(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	fixture := env.LocalTemplate("letter").WithConfigTex(testutil.ValidMarker)
	marker := filepath.Join(env.DestDir, "Thesis", "preamble", "config.tex")
	fsys := &failingFS{FS: env.FS, path: marker, writeFail: true}

	_, err := templates.NewInstantiator(fsys).Instantiate(
		templates.Resolve(fixture.Entry, env.Roots),
		env.DestDir,
		types.SubstitutionContext{Title: "Thesis", Author: "Jane Doe"},
	)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSubstitutionWrite))
	assert.ErrorIs(t, err, os.ErrPermission)
	assert.Equal(t, marker, errors.GetErrorDetails(err)["path"])
}
