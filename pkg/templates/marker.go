package templates

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/vitex/pkg/filesystem"
	"github.com/arthur-debert/vitex/pkg/types"
)

// FindMarker returns the marker file inside dir, preferring the primary
// marker over the fallback.
func FindMarker(fs types.FS, dir string) (string, bool) {
	for _, name := range types.MarkerFiles() {
		path := filepath.Join(dir, name)
		if filesystem.IsFile(fs, path) {
			return path, true
		}
	}
	return "", false
}

// missingPlaceholder returns the first placeholder token absent from content
func missingPlaceholder(content string) (string, bool) {
	for _, token := range types.Placeholders {
		if !strings.Contains(content, token) {
			return token, true
		}
	}
	return "", false
}
