package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/vitex/pkg/errors"
	"github.com/arthur-debert/vitex/pkg/logging"
	"github.com/arthur-debert/vitex/pkg/types"
)

// Environment variable names
const (
	// EnvVitexConfigDir overrides the XDG config directory for vitex
	EnvVitexConfigDir = "VITEX_CONFIG_DIR"

	// EnvVitexDataDir overrides the XDG data directory for vitex
	EnvVitexDataDir = "VITEX_DATA_DIR"

	// EnvVitexStateDir overrides the XDG state directory for vitex
	EnvVitexStateDir = "VITEX_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// VitexDirName is the directory name for vitex-specific files
	VitexDirName = "vitex"

	// ConfigFileName is the name of the configuration file
	ConfigFileName = "config.toml"

	// CustomTemplatesDir is the config subdirectory holding local templates
	CustomTemplatesDir = "custom_templates"

	// ClonedTemplatesDir is the data subdirectory holding git clones
	ClonedTemplatesDir = "clone"
)

// Paths resolves the vitex directories. Every path it returns is absolute.
type Paths interface {
	ConfigDir() string
	ConfigFilePath() string
	DataDir() string
	StateDir() string
	LogFilePath() string
	CustomTemplatesDir() string
	ClonedTemplatesDir() string
	StorageRoots() types.StorageRoots
}

type resolved struct {
	config string
	data   string
	state  string
}

// New resolves the directories from the environment. A non-empty configDir
// takes precedence over VITEX_CONFIG_DIR and the XDG default.
func New(configDir string) (Paths, error) {
	if configDir == "" {
		configDir = os.Getenv(EnvVitexConfigDir)
	}

	r := &resolved{
		config: pick(configDir, xdg.ConfigHome),
		data:   pick(os.Getenv(EnvVitexDataDir), xdg.DataHome),
		state:  pick(os.Getenv(EnvVitexStateDir), xdg.StateHome),
	}

	for _, dir := range []*string{&r.config, &r.data, &r.state} {
		abs, err := filepath.Abs(*dir)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for %s", *dir).
				WithDetail("path", *dir)
		}
		*dir = abs
	}

	return r, nil
}

// pick returns override with ~ expanded, or vitex under the XDG base
func pick(override, xdgBase string) string {
	if override != "" {
		return ExpandHome(override)
	}
	return filepath.Join(xdgBase, VitexDirName)
}

// ExpandHome replaces a leading "~" or "~/" with the user's home directory.
// "~user" forms are returned unchanged.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		if home = os.Getenv(EnvHome); home == "" {
			return path
		}
	}
	return filepath.Join(home, path[1:])
}

func (r *resolved) ConfigDir() string { return r.config }

func (r *resolved) ConfigFilePath() string { return filepath.Join(r.config, ConfigFileName) }

func (r *resolved) DataDir() string { return r.data }

func (r *resolved) StateDir() string { return r.state }

// LogFilePath matches the file the logger opens when VITEX_STATE_DIR is unset
func (r *resolved) LogFilePath() string { return filepath.Join(r.state, logging.LogFileName) }

func (r *resolved) CustomTemplatesDir() string { return filepath.Join(r.config, CustomTemplatesDir) }

func (r *resolved) ClonedTemplatesDir() string { return filepath.Join(r.data, ClonedTemplatesDir) }

// StorageRoots returns both template roots
func (r *resolved) StorageRoots() types.StorageRoots {
	return types.StorageRoots{
		CustomRoot: r.CustomTemplatesDir(),
		ClonedRoot: r.ClonedTemplatesDir(),
	}
}

// EnsureStorageRoots creates both template roots if they are absent
func EnsureStorageRoots(fs types.FS, roots types.StorageRoots) error {
	for _, dir := range []string{roots.CustomRoot, roots.ClonedRoot} {
		if err := fs.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "failed to create template directory %s", dir).
				WithDetail("path", dir)
		}
	}
	return nil
}
