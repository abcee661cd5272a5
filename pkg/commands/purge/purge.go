package purge

import (
	"github.com/arthur-debert/vitex/pkg/errors"
	"github.com/arthur-debert/vitex/pkg/filesystem"
	"github.com/arthur-debert/vitex/pkg/logging"
	"github.com/arthur-debert/vitex/pkg/types"
)

// PurgeOptions holds options for the templates purge command
type PurgeOptions struct {
	Roots types.StorageRoots
	FS    types.FS
}

// PurgeCloned deletes every cloned template. Local templates are untouched.
func PurgeCloned(opts PurgeOptions) (*types.PurgeResult, error) {
	logger := logging.GetLogger("commands.purge")
	root := opts.Roots.ClonedRoot
	result := &types.PurgeResult{Path: root}

	exists, err := filesystem.Exists(opts.FS, root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot access cloned templates at %s", root).
			WithDetail("path", root)
	}
	if !exists {
		logger.Info().Str("path", root).Msg("No cloned templates to delete")
		return result, nil
	}

	if err := opts.FS.RemoveAll(root); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirRemove, "failed to delete cloned templates at %s", root).
			WithDetail("path", root)
	}

	result.Removed = true
	logger.Info().Str("path", root).Msg("Successfully deleted cloned templates")
	return result, nil
}
