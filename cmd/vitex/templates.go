package vitex

import (
	"github.com/arthur-debert/vitex/pkg/commands"
	"github.com/arthur-debert/vitex/pkg/exec"
	"github.com/arthur-debert/vitex/pkg/git"
	"github.com/spf13/cobra"
)

func newTemplatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "templates",
		Aliases: []string{"t"},
		Short:   MsgTemplatesShort,
		Long:    MsgTemplatesLong,
		GroupID: groupTemplates,
	}

	cmd.AddCommand(newSyncCmd())
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newPurgeCmd())

	return cmd
}

func newSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: MsgSyncShort,
		Long:  MsgSyncLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}

			result, err := commands.SyncTemplates(cmd.Context(), commands.SyncTemplatesOptions{
				Registry:     s.registry(),
				Roots:        s.roots,
				FS:           s.fs,
				Synchronizer: git.NewCLISynchronizer(exec.NewRealRunner(), s.fs),
			})
			if err != nil {
				return err
			}

			return s.renderer.RenderSync(result)
		},
	}
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: MsgValidateShort,
		Long:  MsgValidateLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}

			result, err := commands.ValidateTemplates(commands.ValidateTemplatesOptions{
				Registry: s.registry(),
				Roots:    s.roots,
				FS:       s.fs,
			})
			if err != nil {
				return err
			}

			return s.renderer.RenderValidate(result)
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   MsgListShort,
		Long:    MsgListLong,
		Example: `  # List templates
  vitex templates list

  # Machine readable output
  vitex templates list --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}

			result, err := commands.ListTemplates(commands.ListTemplatesOptions{
				Registry: s.registry(),
				Roots:    s.roots,
				FS:       s.fs,
			})
			if err != nil {
				return err
			}

			return s.renderer.RenderTemplates(result)
		},
	}
}

func newPurgeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "purge",
		Short: MsgPurgeShort,
		Long:  MsgPurgeLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}

			result, err := commands.PurgeCloned(commands.PurgeOptions{
				Roots: s.roots,
				FS:    s.fs,
			})
			if err != nil {
				return err
			}

			return s.renderer.RenderPurge(result)
		},
	}
}
