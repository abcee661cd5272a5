// Package paths provides centralized path handling for vitex.
//
// This package implements the XDG Base Directory conventions and provides
// a consistent API for the directories vitex reads and writes:
//
//   - The configuration directory holding config.toml
//   - The custom templates root, one subdirectory per local template
//   - The cloned templates root, one git clone per git template
//   - The log file location
//
// # Environment Variables
//
// The package respects the following environment variables:
//
//   - VITEX_CONFIG_DIR: Override the config directory (default: $XDG_CONFIG_HOME/vitex)
//   - VITEX_DATA_DIR: Override the data directory (default: $XDG_DATA_HOME/vitex)
//   - VITEX_STATE_DIR: Override the state directory (default: $XDG_STATE_HOME/vitex)
//
// # Layout
//
//   - Config: <config>/config.toml
//   - Custom templates: <config>/custom_templates/<id>
//   - Cloned templates: <data>/clone/<id>
//   - Log file: <state>/vitex.log
//
// # Usage
//
//	p, err := paths.New("")
//	if err != nil {
//	    return err
//	}
//	roots := p.StorageRoots()
//	if err := paths.EnsureStorageRoots(fs, roots); err != nil {
//	    return err
//	}
package paths
