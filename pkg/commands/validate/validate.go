package validate

import (
	"github.com/arthur-debert/vitex/pkg/filesystem"
	"github.com/arthur-debert/vitex/pkg/logging"
	"github.com/arthur-debert/vitex/pkg/templates"
	"github.com/arthur-debert/vitex/pkg/types"
)

// ValidateTemplatesOptions holds options for the templates validate command
type ValidateTemplatesOptions struct {
	Registry types.Registry
	Roots    types.StorageRoots
	FS       types.FS
}

// ValidateTemplates validates every configured template, stopping at the
// first failure
func ValidateTemplates(opts ValidateTemplatesOptions) (*types.ValidateTemplatesResult, error) {
	log := logging.GetLogger("commands.validate")
	log.Debug().Str("command", "ValidateTemplates").Msg("Executing command")

	result := &types.ValidateTemplatesResult{Validated: make([]string, 0, len(opts.Registry))}

	if err := templates.ValidateRegistry(opts.Registry); err != nil {
		return result, err
	}

	validator := templates.NewValidator(filesystem.ReadOnly(opts.FS))
	for _, entry := range opts.Registry {
		if _, err := validator.Validate(entry, opts.Roots); err != nil {
			log.Error().Err(err).Str("template", entry.ID).Msg("Template is invalid")
			return result, err
		}
		result.Validated = append(result.Validated, entry.ID)
	}

	log.Info().Str("command", "ValidateTemplates").Int("count", len(result.Validated)).Msg("Command finished")
	return result, nil
}
