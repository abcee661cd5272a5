// Package config loads the vitex configuration file.
//
// The configuration lives at <config dir>/config.toml and is layered with
// koanf: built-in defaults, then the file, then VITEX_ environment
// variables. A missing file is created from the embedded defaults.
//
// The loaded configuration is validated before it is handed out: template
// ids must be non-empty and unique, and a git path prefix requires a
// repository. Registry converts it into the template entries the rest of
// vitex works with.
package config
