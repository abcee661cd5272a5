package types

import (
	"path/filepath"
)

// Placeholder tokens recognized inside a template's marker file
const (
	TitlePlaceholder    = "VITEX_TITLE_PLACEHOLDER"
	SubtitlePlaceholder = "VITEX_SUBTITLE_PLACEHOLDER"
	AuthorPlaceholder   = "VITEX_AUTHOR_PLACEHOLDER"
)

// Placeholders lists the tokens every marker file must contain, in the
// order they are checked.
var Placeholders = []string{
	TitlePlaceholder,
	SubtitlePlaceholder,
	AuthorPlaceholder,
}

// Marker files, relative to a template's content root
var (
	// PrimaryMarkerFile is preferred when both markers exist
	PrimaryMarkerFile = filepath.Join("preamble", "config.tex")

	// FallbackMarkerFile is used when the primary marker is absent
	FallbackMarkerFile = "main.tex"
)

// MarkerFiles lists the marker files in search order
func MarkerFiles() []string {
	return []string{PrimaryMarkerFile, FallbackMarkerFile}
}

// SourcingMode names where a template's content comes from
type SourcingMode string

const (
	SourcingLocal SourcingMode = "local"
	SourcingGit   SourcingMode = "git"
)

// Sourcing is the sealed set of template sourcing modes: Local or Git.
type Sourcing interface {
	Mode() SourcingMode
	isSourcing()
}

// Local templates live in a directory under the custom templates root
type Local struct {
	// Path is the directory name under the custom root; it equals the template id
	Path string
}

// Mode implements Sourcing
func (Local) Mode() SourcingMode { return SourcingLocal }

func (Local) isSourcing() {}

// Git templates live in a clone of Repository, at PathPrefix inside the clone
type Git struct {
	Repository string

	// PathPrefix is relative to the clone root and may be empty
	PathPrefix string
}

// Mode implements Sourcing
func (Git) Mode() SourcingMode { return SourcingGit }

func (Git) isSourcing() {}

// TemplateEntry describes one named template of the registry
type TemplateEntry struct {
	ID       string
	Sourcing Sourcing
}

// NewLocalTemplate creates a template entry stored under the custom root
func NewLocalTemplate(id string) TemplateEntry {
	return TemplateEntry{ID: id, Sourcing: Local{Path: id}}
}

// NewGitTemplate creates a template entry backed by a git repository.
// An empty repository yields a local template, mirroring how the
// configuration file distinguishes the two modes.
func NewGitTemplate(id, repository, pathPrefix string) TemplateEntry {
	if repository == "" {
		return NewLocalTemplate(id)
	}
	return TemplateEntry{ID: id, Sourcing: Git{Repository: repository, PathPrefix: pathPrefix}}
}

// IsGit reports whether the entry is git-sourced
func (t TemplateEntry) IsGit() bool {
	_, ok := t.Sourcing.(Git)
	return ok
}

// Mode returns the entry's sourcing mode; entries without sourcing are local
func (t TemplateEntry) Mode() SourcingMode {
	if t.Sourcing == nil {
		return SourcingLocal
	}
	return t.Sourcing.Mode()
}

// StorageRoots holds the two directories templates are stored under
type StorageRoots struct {
	// CustomRoot holds one subdirectory per local template, named by id
	CustomRoot string

	// ClonedRoot holds one clone per git template, named by id
	ClonedRoot string
}

// ContentDirectory is a resolved template content root
type ContentDirectory struct {
	Path  string
	Entry TemplateEntry
}

// SubstitutionContext carries the values substituted into a new project
type SubstitutionContext struct {
	Title    string
	Subtitle string
	Author   string
}

// EffectiveSubtitle returns the subtitle, defaulting to the title
func (s SubstitutionContext) EffectiveSubtitle() string {
	if s.Subtitle == "" {
		return s.Title
	}
	return s.Subtitle
}
