package templates

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/arthur-debert/vitex/pkg/errors"
	"github.com/arthur-debert/vitex/pkg/filesystem"
	"github.com/arthur-debert/vitex/pkg/logging"
	"github.com/arthur-debert/vitex/pkg/types"
	"github.com/rs/zerolog"
)

// Instantiation describes a project created from a template
type Instantiation struct {
	// Path is the created project directory
	Path string

	// MarkerFile is the rewritten marker file, empty when none was found
	MarkerFile string

	// Warnings holds non-fatal problems met while instantiating
	Warnings []string
}

// Instantiator copies templates into new project directories
type Instantiator struct {
	fs     types.FS
	logger zerolog.Logger
}

// NewInstantiator creates an instantiator operating on fs
func NewInstantiator(fs types.FS) *Instantiator {
	return &Instantiator{
		fs:     fs,
		logger: logging.GetLogger("templates.instantiate"),
	}
}

// SanitizeTitle turns a project title into a directory name by replacing
// whitespace and path separators with underscores.
func SanitizeTitle(title string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '/' || r == os.PathSeparator {
			return '_'
		}
		return r
	}, title)
}

// Instantiate copies content into destinationParent/<sanitized title> and
// substitutes the placeholders of the copied marker file.
func (i *Instantiator) Instantiate(content types.ContentDirectory, destinationParent string, subs types.SubstitutionContext) (*Instantiation, error) {
	name := SanitizeTitle(subs.Title)
	if strings.TrimSpace(subs.Title) == "" || name == "." || name == ".." {
		return nil, errors.Newf(errors.ErrInvalidInput, "title %q cannot be used as a directory name", subs.Title).
			WithDetail("title", subs.Title)
	}

	dest := filepath.Join(destinationParent, name)
	logger := i.logger.With().
		Str("template", content.Entry.ID).
		Str("source", content.Path).
		Str("destination", dest).
		Logger()

	if within(content.Path, dest) {
		return nil, errDestinationInsideTemplate(content.Entry.ID, dest)
	}

	exists, err := filesystem.Exists(i.fs, dest)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot access destination `%s`", dest).
			WithDetail("path", dest)
	}
	if exists {
		return nil, errDestinationExists(dest)
	}

	logger.Debug().Msg("Copying template")
	if err := i.copyDir(content.Path, dest); err != nil {
		return nil, err
	}

	result := &Instantiation{Path: dest}

	marker, ok := FindMarker(i.fs, dest)
	if !ok {
		warning := fmt.Sprintf("template `%s` has no `preamble/config.tex` or `main.tex`: placeholders were not substituted", content.Entry.ID)
		logger.Warn().Msg(warning)
		result.Warnings = append(result.Warnings, warning)
		return result, nil
	}

	if err := i.substitute(marker, subs); err != nil {
		return nil, err
	}
	result.MarkerFile = marker

	logger.Info().Str("marker", marker).Msg("Project created")
	return result, nil
}

func (i *Instantiator) substitute(marker string, subs types.SubstitutionContext) error {
	info, err := i.fs.Stat(marker)
	if err != nil {
		return errSubstitutionWrite(marker, err)
	}
	data, err := i.fs.ReadFile(marker)
	if err != nil {
		return errSubstitutionWrite(marker, err)
	}
	if err := i.fs.WriteFile(marker, []byte(Substitute(string(data), subs)), info.Mode().Perm()); err != nil {
		return errSubstitutionWrite(marker, err)
	}
	return nil
}

// within reports whether path is dir or lies below it
func within(dir, path string) bool {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(absDir, absPath)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// copyDir recursively copies src into dst, preserving file modes
func (i *Instantiator) copyDir(src, dst string) error {
	info, err := i.fs.Stat(src)
	if err != nil {
		return errCopyFailed(src, err)
	}
	if err := i.fs.MkdirAll(dst, info.Mode().Perm()|0700); err != nil {
		return errCopyFailed(dst, err)
	}

	entries, err := i.fs.ReadDir(src)
	if err != nil {
		return errCopyFailed(src, err)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := i.copyDir(srcPath, dstPath); err != nil {
				return err
			}
			continue
		}

		if err := i.copyFile(srcPath, dstPath); err != nil {
			return err
		}
	}
	return nil
}

func (i *Instantiator) copyFile(src, dst string) error {
	perm := fs.FileMode(0644)
	if info, err := i.fs.Stat(src); err == nil {
		perm = info.Mode().Perm()
	}

	data, err := i.fs.ReadFile(src)
	if err != nil {
		return errCopyFailed(src, err)
	}
	if err := i.fs.WriteFile(dst, data, perm); err != nil {
		return errCopyFailed(dst, err)
	}

	i.logger.Trace().Str("from", src).Str("to", dst).Msg("Copied file")
	return nil
}
