package sync

import (
	"context"
	stderrors "errors"

	"github.com/arthur-debert/vitex/pkg/errors"
	"github.com/arthur-debert/vitex/pkg/git"
	"github.com/arthur-debert/vitex/pkg/logging"
	"github.com/arthur-debert/vitex/pkg/templates"
	"github.com/arthur-debert/vitex/pkg/types"
)

// SyncTemplatesOptions holds options for the templates sync command
type SyncTemplatesOptions struct {
	Registry     types.Registry
	Roots        types.StorageRoots
	FS           types.FS
	Synchronizer git.Synchronizer
}

// SyncTemplates clones or pulls every git template in declaration order,
// stopping at the first failure, then validates the git templates.
func SyncTemplates(ctx context.Context, opts SyncTemplatesOptions) (*types.SyncTemplatesResult, error) {
	logger := logging.GetLogger("commands.sync")
	defer logging.LogOperationStart(logger, "sync templates")()

	gitTemplates := opts.Registry.GitSourced()
	result := &types.SyncTemplatesResult{Templates: make([]types.TemplateSyncStatus, 0, len(gitTemplates))}

	for _, entry := range gitTemplates {
		source := entry.Sourcing.(types.Git)
		target := templates.CloneRoot(entry, opts.Roots)

		logger.Debug().
			Str("template", entry.ID).
			Str("repository", source.Repository).
			Msg("Synchronizing template")

		synced, err := opts.Synchronizer.Synchronize(ctx, source.Repository, target)
		if err != nil {
			logger.Error().Err(err).Str("template", entry.ID).Msg("Sync failed")
			var vErr *errors.VitexError
			if stderrors.As(err, &vErr) {
				vErr.WithDetail("id", entry.ID)
			}
			return result, err
		}

		result.Templates = append(result.Templates, types.TemplateSyncStatus{
			ID:         entry.ID,
			Repository: source.Repository,
			Path:       target,
			Action:     string(synced.Action),
			Output:     synced.Output,
		})
	}

	logger.Debug().Msg("Validating templates")
	if err := templates.NewValidator(opts.FS).ValidateAll(gitTemplates, opts.Roots); err != nil {
		logger.Error().Err(err).Msg("Post-sync template validation detected an issue")
		return result, err
	}

	logger.Info().
		Int("count", len(result.Templates)).
		Msg("Updated and scanned templates. No issues detected")
	return result, nil
}
