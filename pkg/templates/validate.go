package templates

import (
	"github.com/arthur-debert/vitex/pkg/errors"
	"github.com/arthur-debert/vitex/pkg/filesystem"
	"github.com/arthur-debert/vitex/pkg/logging"
	"github.com/arthur-debert/vitex/pkg/types"
	"github.com/rs/zerolog"
)

// ValidateRegistry checks registry-level invariants: every id is unique.
func ValidateRegistry(registry types.Registry) error {
	if id, dup := registry.DuplicateID(); dup {
		return errDuplicateID(id)
	}
	return nil
}

// Validator checks that templates are structurally well-formed
type Validator struct {
	fs     types.FS
	logger zerolog.Logger
}

// NewValidator creates a validator reading through fs
func NewValidator(fs types.FS) *Validator {
	return &Validator{
		fs:     fs,
		logger: logging.GetLogger("templates.validate"),
	}
}

// Validate checks a single template and returns its content directory.
// The first failing check wins.
func (v *Validator) Validate(entry types.TemplateEntry, roots types.StorageRoots) (types.ContentDirectory, error) {
	content := Resolve(entry, roots)
	logger := v.logger.With().
		Str("template", entry.ID).
		Str("mode", string(entry.Mode())).
		Str("path", content.Path).
		Logger()

	logger.Trace().Msg("Validating template")

	if entry.IsGit() {
		cloneRoot := CloneRoot(entry, roots)
		cloned, err := filesystem.Exists(v.fs, cloneRoot)
		if err != nil {
			return types.ContentDirectory{}, errors.Wrapf(err, errors.ErrFileAccess, "cannot access clone of template `%s`", entry.ID).
				WithDetail("id", entry.ID).
				WithDetail("path", cloneRoot)
		}
		if !cloned {
			return types.ContentDirectory{}, errNotCloned(entry.ID, cloneRoot)
		}
		if !within(cloneRoot, content.Path) || !filesystem.IsDir(v.fs, content.Path) {
			return types.ContentDirectory{}, errInvalidPathPrefix(entry.ID, content.Path)
		}
	} else {
		found, err := filesystem.Exists(v.fs, content.Path)
		if err != nil {
			return types.ContentDirectory{}, errors.Wrapf(err, errors.ErrFileAccess, "cannot access template `%s`", entry.ID).
				WithDetail("id", entry.ID).
				WithDetail("path", content.Path)
		}
		if !found {
			return types.ContentDirectory{}, errNotFoundLocally(entry.ID, content.Path)
		}
	}

	marker, ok := FindMarker(v.fs, content.Path)
	if !ok {
		return types.ContentDirectory{}, errMissingMarkerFile(entry.ID, content.Path)
	}

	if err := v.checkMarker(entry.ID, marker); err != nil {
		return types.ContentDirectory{}, err
	}

	logger.Debug().Str("marker", marker).Msg("Template is valid")
	return content, nil
}

// ValidateAll validates every entry of registry, stopping at the first failure
func (v *Validator) ValidateAll(registry types.Registry, roots types.StorageRoots) error {
	if err := ValidateRegistry(registry); err != nil {
		return err
	}
	for _, entry := range registry {
		if _, err := v.Validate(entry, roots); err != nil {
			return err
		}
	}
	v.logger.Debug().Int("count", len(registry)).Msg("All templates are valid")
	return nil
}

func (v *Validator) checkMarker(id, path string) error {
	data, err := v.fs.ReadFile(path)
	if err != nil {
		return errUnreadableMarker(id, path, err)
	}
	if token, missing := missingPlaceholder(string(data)); missing {
		return errMissingPlaceholder(id, path, token)
	}
	return nil
}
