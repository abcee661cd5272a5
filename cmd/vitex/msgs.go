package vitex

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "A LaTeX template manager"
	MsgNewShort        = "Create a new project from a template"
	MsgTemplatesShort  = "Manage templates"
	MsgSyncShort       = "Clone or update the git templates"
	MsgValidateShort   = "Validate every configured template"
	MsgValidateLong    = "Validate checks that every configured template is installed and that its marker file holds all placeholders."
	MsgListShort       = "List the configured templates"
	MsgListLong        = "List displays every template declared in config.toml with its source and location."
	MsgPurgeShort      = "Delete the cloned git templates"
	MsgPurgeLong       = "Purge deletes the directory holding the cloned git templates. Local templates are left untouched."
	MsgConfigShort     = "Show the configuration file"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man page"

	// Status messages
	MsgConfigCreated = "Created default configuration at %s\n"
	MsgCommitLine    = "Commit: %s\n"
	MsgBuiltLine     = "Built:  %s\n"

	// Error messages
	MsgErrNoCommand = "no command specified"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfigDir   = "Configuration directory (default $VITEX_CONFIG_DIR or $XDG_CONFIG_HOME/vitex)"
	MsgFlagFormat      = "Output format: auto, term, text, json or yaml"
	MsgFlagTemplate    = "Template to use (default: the first configured template)"
	MsgFlagAuthor      = "Author name (default: configured author, then $USER)"
	MsgFlagSubtitle    = "Subtitle (default: the title)"
	MsgFlagDestination = "Directory to create the project in (default: current directory)"
	MsgFlagShow        = "Print the effective configuration as TOML"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/new-long.txt
	msgNewLongRaw string
	MsgNewLong    = strings.TrimSpace(msgNewLongRaw)

	//go:embed msgs/new-example.txt
	msgNewExampleRaw string
	MsgNewExample    = strings.TrimRight(msgNewExampleRaw, "\n")

	//go:embed msgs/templates-long.txt
	msgTemplatesLongRaw string
	MsgTemplatesLong    = strings.TrimSpace(msgTemplatesLongRaw)

	//go:embed msgs/sync-long.txt
	msgSyncLongRaw string
	MsgSyncLong    = strings.TrimSpace(msgSyncLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
