package vitex

import (
	"github.com/arthur-debert/vitex/pkg/commands"
	"github.com/arthur-debert/vitex/pkg/paths"
	"github.com/spf13/cobra"
)

func newNewCmd() *cobra.Command {
	var (
		templateID  string
		author      string
		subtitle    string
		destination string
	)

	cmd := &cobra.Command{
		Use:     "new <title>",
		Short:   MsgNewShort,
		Long:    MsgNewLong,
		Example: MsgNewExample,
		GroupID: groupProject,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}

			if destination != "" {
				destination = paths.ExpandHome(destination)
			}

			result, err := commands.NewProject(commands.NewProjectOptions{
				Registry:          s.registry(),
				Roots:             s.roots,
				FS:                s.fs,
				TemplateID:        templateID,
				Title:             args[0],
				Subtitle:          subtitle,
				Author:            author,
				ConfigAuthor:      s.config.Author,
				DestinationParent: destination,
			})
			if err != nil {
				return err
			}

			return s.renderer.RenderNewProject(result)
		},
	}

	cmd.Flags().StringVarP(&templateID, "template", "t", "", MsgFlagTemplate)
	cmd.Flags().StringVarP(&author, "author", "a", "", MsgFlagAuthor)
	cmd.Flags().StringVarP(&subtitle, "subtitle", "s", "", MsgFlagSubtitle)
	cmd.Flags().StringVarP(&destination, "destination", "d", "", MsgFlagDestination)
	_ = cmd.RegisterFlagCompletionFunc("template", templateIDsCompletion)
	_ = cmd.MarkFlagDirname("destination")

	return cmd
}
