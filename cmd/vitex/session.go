package vitex

import (
	"fmt"
	"os"

	"github.com/arthur-debert/vitex/pkg/config"
	"github.com/arthur-debert/vitex/pkg/filesystem"
	"github.com/arthur-debert/vitex/pkg/paths"
	"github.com/arthur-debert/vitex/pkg/types"
	"github.com/arthur-debert/vitex/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// session is the state shared by every command that reads the configuration
type session struct {
	paths    paths.Paths
	roots    types.StorageRoots
	fs       types.FS
	config   *config.Config
	renderer *ui.Renderer
}

// registry returns the configured templates
func (s *session) registry() types.Registry {
	return s.config.Registry()
}

// newSession resolves the directories, provisions the storage roots and
// loads the configuration
func newSession(cmd *cobra.Command) (*session, error) {
	configDir, _ := cmd.Root().PersistentFlags().GetString(flagConfigDir)
	formatName, _ := cmd.Root().PersistentFlags().GetString(flagFormat)

	format, err := ui.ParseFormat(formatName)
	if err != nil {
		return nil, err
	}

	p, err := paths.New(configDir)
	if err != nil {
		return nil, err
	}

	fs := filesystem.NewOS()
	roots := p.StorageRoots()
	if err := paths.EnsureStorageRoots(fs, roots); err != nil {
		return nil, err
	}

	cfg, err := config.Load(fs, p.ConfigFilePath())
	if err != nil {
		return nil, err
	}
	if cfg.Created {
		fmt.Fprintf(cmd.ErrOrStderr(), MsgConfigCreated, cfg.Path)
	}

	log.Debug().
		Str("configFile", cfg.Path).
		Str("customRoot", roots.CustomRoot).
		Str("clonedRoot", roots.ClonedRoot).
		Str("format", format.String()).
		Msg("Session initialized")

	return &session{
		paths:    p,
		roots:    roots,
		fs:       fs,
		config:   cfg,
		renderer: ui.NewRenderer(cmd.OutOrStdout(), format.Resolve(os.Stdout)),
	}, nil
}

// templateIDsCompletion provides shell completion for template ids
func templateIDsCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	s, err := newSession(cmd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return s.registry().IDs(), cobra.ShellCompDirectiveNoFileComp
}
