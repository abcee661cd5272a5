package vitex

import (
	"embed"
	"os"

	"github.com/arthur-debert/vitex/internal/version"
	"github.com/arthur-debert/vitex/pkg/cobrax/topics"
	"github.com/arthur-debert/vitex/pkg/errors"
	"github.com/arthur-debert/vitex/pkg/logging"
	"github.com/arthur-debert/vitex/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicFiles embed.FS

// Persistent flag names
const (
	flagConfigDir = "config-dir"
	flagFormat    = "format"
)

// Command group IDs
const (
	groupProject   = "project"
	groupTemplates = "templates"
	groupMisc      = "misc"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "vitex",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			logging.LogCommand(cmd.CommandPath(), args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().String(flagConfigDir, "", MsgFlagConfigDir)
	rootCmd.PersistentFlags().String(flagFormat, "auto", MsgFlagFormat)
	_ = rootCmd.RegisterFlagCompletionFunc(flagFormat, formatCompletion)

	rootCmd.AddGroup(&cobra.Group{ID: groupProject, Title: "PROJECTS:"})
	rootCmd.AddGroup(&cobra.Group{ID: groupTemplates, Title: "TEMPLATES:"})
	rootCmd.AddGroup(&cobra.Group{ID: groupMisc, Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newNewCmd())
	rootCmd.AddCommand(newTemplatesCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	initTopics(rootCmd)

	return rootCmd
}

// initTopics installs the help command serving the embedded topics
func initTopics(rootCmd *cobra.Command) {
	var renderer topics.Renderer = &topics.PlainRenderer{}
	if stdoutIsTerminal() && os.Getenv("NO_COLOR") == "" {
		renderer = topics.NewGlamourRenderer()
	}

	tm, err := topics.Load(topicFiles, "topics", topics.Options{
		Extensions: []string{".md"},
		Renderer:   renderer,
		GroupID:    groupMisc,
	})
	if err != nil {
		log.Warn().Err(err).Msg("Failed to load help topics")
		return
	}
	tm.Install(rootCmd)
}

func formatCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return ui.FormatNames(), cobra.ShellCompDirectiveNoFileComp
}
