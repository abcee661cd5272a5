package templates

import (
	"github.com/arthur-debert/vitex/pkg/errors"
)

func errDuplicateID(id string) error {
	return errors.Newf(errors.ErrDuplicateID, "ID `%s` is duplicated but must be unique", id).
		WithDetail("id", id)
}

func errNotCloned(id, cloneRoot string) error {
	return errors.Newf(errors.ErrNotCloned,
		"template `%s` is set-up but not yet installed\nHINT: run `vitex templates sync` to address this issue", id).
		WithDetail("id", id).
		WithDetail("path", cloneRoot)
}

func errNotFoundLocally(id, dir string) error {
	return errors.Newf(errors.ErrNotFoundLocally,
		"template `%s` is set-up but not found locally\nHINT: check if the template is present at `%s`", id, dir).
		WithDetail("id", id).
		WithDetail("path", dir)
}

func errInvalidPathPrefix(id, fullPath string) error {
	return errors.Newf(errors.ErrInvalidPathPrefix,
		"invalid path-prefix for template `%s`: path prefix leads to nowhere (full path: `%s`)", id, fullPath).
		WithDetail("id", id).
		WithDetail("path", fullPath)
}

func errMissingMarkerFile(id, dir string) error {
	return errors.Newf(errors.ErrMissingMarkerFile,
		"template `%s` is missing the file `preamble/config.tex` or `main.tex` (full path `%s`)", id, dir).
		WithDetail("id", id).
		WithDetail("path", dir)
}

func errUnreadableMarker(id, path string, cause error) error {
	return errors.Wrapf(cause, errors.ErrUnreadableMarker,
		"could not read file at `%s` whilst validating template `%s`", path, id).
		WithDetail("id", id).
		WithDetail("path", path)
}

func errMissingPlaceholder(id, path, token string) error {
	return errors.Newf(errors.ErrMissingPlaceholder,
		"template `%s` holds a malformed marker file (`%s`): could not find placeholder `%s`", id, path, token).
		WithDetail("id", id).
		WithDetail("path", path).
		WithDetail("token", token)
}

func errDestinationExists(path string) error {
	return errors.Newf(errors.ErrDestinationExists, "destination `%s` already exists", path).
		WithDetail("path", path)
}

func errDestinationInsideTemplate(id, path string) error {
	return errors.Newf(errors.ErrInvalidInput,
		"destination `%s` is inside template `%s`\nHINT: pick a destination outside the template directory", path, id).
		WithDetail("id", id).
		WithDetail("path", path)
}

func errCopyFailed(path string, cause error) error {
	return errors.Wrapf(cause, errors.ErrCopyFailed, "could not copy `%s`", path).
		WithDetail("path", path)
}

func errSubstitutionWrite(path string, cause error) error {
	return errors.Wrapf(cause, errors.ErrSubstitutionWrite, "could not write placeholders to `%s`", path).
		WithDetail("path", path)
}
