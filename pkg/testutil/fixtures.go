package testutil

import (
	"path/filepath"

	"github.com/arthur-debert/vitex/pkg/types"
	"github.com/stretchr/testify/require"
)

// ValidMarker is marker file content holding every placeholder token
const ValidMarker = `\newcommand{\doctitle}{VITEX_TITLE_PLACEHOLDER}
\newcommand{\docsubtitle}{VITEX_SUBTITLE_PLACEHOLDER}
\newcommand{\docauthor}{VITEX_AUTHOR_PLACEHOLDER}
`

// TemplateFixture is a template content directory under construction
type TemplateFixture struct {
	Entry types.TemplateEntry

	// Dir is the template's content directory
	Dir string

	env *TestEnvironment
}

// LocalTemplate creates the content directory of a local template
func (env *TestEnvironment) LocalTemplate(id string) *TemplateFixture {
	env.t.Helper()

	dir := filepath.Join(env.Roots.CustomRoot, id)
	require.NoError(env.t, env.FS.MkdirAll(dir, 0755))
	return &TemplateFixture{Entry: types.NewLocalTemplate(id), Dir: dir, env: env}
}

// GitTemplate creates the clone and prefixed content directory of a git template
func (env *TestEnvironment) GitTemplate(id, repository, pathPrefix string) *TemplateFixture {
	env.t.Helper()

	dir := filepath.Join(env.Roots.ClonedRoot, id, pathPrefix)
	require.NoError(env.t, env.FS.MkdirAll(dir, 0755))
	return &TemplateFixture{Entry: types.NewGitTemplate(id, repository, pathPrefix), Dir: dir, env: env}
}

// WithFile adds a file relative to the content directory
func (f *TemplateFixture) WithFile(rel, content string) *TemplateFixture {
	f.env.t.Helper()

	f.env.WriteFile(filepath.Join(f.Dir, rel), content)
	return f
}

// WithConfigTex adds preamble/config.tex with the given content
func (f *TemplateFixture) WithConfigTex(content string) *TemplateFixture {
	return f.WithFile(types.PrimaryMarkerFile, content)
}

// WithMainTex adds main.tex with the given content
func (f *TemplateFixture) WithMainTex(content string) *TemplateFixture {
	return f.WithFile(types.FallbackMarkerFile, content)
}
