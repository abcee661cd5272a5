package list

import (
	"github.com/arthur-debert/vitex/pkg/filesystem"
	"github.com/arthur-debert/vitex/pkg/logging"
	"github.com/arthur-debert/vitex/pkg/templates"
	"github.com/arthur-debert/vitex/pkg/types"
)

// ListTemplatesOptions defines the options for the ListTemplates command.
type ListTemplatesOptions struct {
	Registry types.Registry
	Roots    types.StorageRoots
	FS       types.FS
}

// ListTemplates describes the configured templates in declaration order.
func ListTemplates(opts ListTemplatesOptions) (*types.ListTemplatesResult, error) {
	log := logging.GetLogger("commands.list")
	log.Debug().Str("command", "ListTemplates").Msg("Executing command")

	result := &types.ListTemplatesResult{
		Templates: make([]types.TemplateInfo, len(opts.Registry)),
	}

	for i, entry := range opts.Registry {
		content := templates.Resolve(entry, opts.Roots)
		info := types.TemplateInfo{
			ID:        entry.ID,
			Mode:      entry.Mode(),
			Path:      content.Path,
			Installed: filesystem.IsDir(opts.FS, content.Path),
		}
		if source, ok := entry.Sourcing.(types.Git); ok {
			info.Repository = source.Repository
			info.PathPrefix = source.PathPrefix
		}
		result.Templates[i] = info
	}

	log.Info().Str("command", "ListTemplates").Int("templateCount", len(result.Templates)).Msg("Command finished")
	return result, nil
}
