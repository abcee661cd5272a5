package newproject

import (
	"os"

	"github.com/arthur-debert/vitex/pkg/errors"
	"github.com/arthur-debert/vitex/pkg/logging"
	"github.com/arthur-debert/vitex/pkg/templates"
	"github.com/arthur-debert/vitex/pkg/types"
	"github.com/rs/zerolog"
)

// NewProjectOptions holds options for the new command
type NewProjectOptions struct {
	Registry types.Registry
	Roots    types.StorageRoots
	FS       types.FS

	// TemplateID selects the template. Empty means the first configured one.
	TemplateID string

	Title    string
	Subtitle string

	// Author overrides ConfigAuthor and $USER when set
	Author       string
	ConfigAuthor string

	// DestinationParent is where the project directory is created.
	// Empty means the current directory.
	DestinationParent string
}

// NewProject validates the selected template and instantiates it
func NewProject(opts NewProjectOptions) (*types.NewProjectResult, error) {
	logger := logging.GetLogger("commands.new")
	defer logging.LogOperationStart(logger, "new project")()

	if len(opts.Registry) == 0 {
		err := errors.New(errors.ErrNoTemplates,
			"no templates are configured\nHINT: add a [[templates]] entry to the configuration file")
		logNewProject(logger, opts, nil, err)
		return nil, err
	}

	entry := opts.Registry[0]
	if opts.TemplateID != "" {
		found, ok := opts.Registry.FindByID(opts.TemplateID)
		if !ok {
			err := errors.Newf(errors.ErrUnknownTemplate, "template `%s` is not configured", opts.TemplateID).
				WithDetail("id", opts.TemplateID).
				WithDetail("available", opts.Registry.IDs())
			logNewProject(logger, opts, nil, err)
			return nil, err
		}
		entry = *found
	}

	parent := opts.DestinationParent
	if parent == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to get current directory")
		}
		parent = cwd
	}

	subs := types.SubstitutionContext{
		Title:    opts.Title,
		Subtitle: opts.Subtitle,
		Author:   resolveAuthor(opts),
	}

	logger.Debug().
		Str("template", entry.ID).
		Str("title", subs.Title).
		Str("author", subs.Author).
		Str("parent", parent).
		Msg("Creating project")

	content, err := templates.NewValidator(opts.FS).Validate(entry, opts.Roots)
	if err != nil {
		logNewProject(logger, opts, nil, err)
		return nil, err
	}

	inst, err := templates.NewInstantiator(opts.FS).Instantiate(content, parent, subs)
	if err != nil {
		logNewProject(logger, opts, nil, err)
		return nil, err
	}

	result := &types.NewProjectResult{
		TemplateID: entry.ID,
		Path:       inst.Path,
		MarkerFile: inst.MarkerFile,
		Title:      subs.Title,
		Subtitle:   subs.EffectiveSubtitle(),
		Author:     subs.Author,
		Warnings:   inst.Warnings,
	}
	logNewProject(logger, opts, result, nil)
	return result, nil
}

func resolveAuthor(opts NewProjectOptions) string {
	if opts.Author != "" {
		return opts.Author
	}
	if opts.ConfigAuthor != "" {
		return opts.ConfigAuthor
	}
	return os.Getenv("USER")
}

func logNewProject(logger zerolog.Logger, opts NewProjectOptions, result *types.NewProjectResult, err error) {
	event := logger.Info()
	if err != nil {
		event = logger.Error().Err(err)
	}

	event.
		Str("command", "new").
		Str("template", opts.TemplateID).
		Str("title", opts.Title)

	if result != nil {
		event.
			Str("path", result.Path).
			Int("warnings", len(result.Warnings))
	}

	if err != nil {
		event.Msg("New command failed")
	} else {
		event.Msg("New command completed")
	}
}
