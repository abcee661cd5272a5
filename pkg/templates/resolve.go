package templates

import (
	"path/filepath"

	"github.com/arthur-debert/vitex/pkg/types"
)

// Resolve returns the content directory of entry under roots
func Resolve(entry types.TemplateEntry, roots types.StorageRoots) types.ContentDirectory {
	var dir string
	switch s := entry.Sourcing.(type) {
	case types.Git:
		dir = filepath.Join(CloneRoot(entry, roots), s.PathPrefix)
	default:
		dir = filepath.Join(roots.CustomRoot, entry.ID)
	}
	return types.ContentDirectory{Path: dir, Entry: entry}
}

// CloneRoot returns the directory a git template is cloned into
func CloneRoot(entry types.TemplateEntry, roots types.StorageRoots) string {
	return filepath.Join(roots.ClonedRoot, entry.ID)
}
