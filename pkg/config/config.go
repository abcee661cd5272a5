package config

import (
	"strings"

	"github.com/arthur-debert/vitex/pkg/errors"
	"github.com/arthur-debert/vitex/pkg/templates"
	"github.com/arthur-debert/vitex/pkg/types"
	"github.com/pelletier/go-toml/v2"
)

// Config is the decoded configuration file
type Config struct {
	// Author fills the author placeholder when none is given on the command line
	Author string `koanf:"author" toml:"author,omitempty"`

	// Templates are the configured templates in declaration order
	Templates []TemplateConfig `koanf:"templates" toml:"templates"`

	// Path is the file the configuration was loaded from
	Path string `koanf:"-" toml:"-"`

	// Created is true when the file did not exist and was written from the defaults
	Created bool `koanf:"-" toml:"-"`
}

// TemplateConfig is one [[templates]] entry
type TemplateConfig struct {
	ID  string     `koanf:"id" toml:"id"`
	Git *GitConfig `koanf:"git" toml:"git,omitempty"`
}

// GitConfig is the optional [templates.git] table
type GitConfig struct {
	Repository string `koanf:"repository" toml:"repository"`
	PathPrefix string `koanf:"path_prefix" toml:"path_prefix,omitempty"`
}

// Validate checks the configuration and returns the first problem found
func (c *Config) Validate() error {
	for i, t := range c.Templates {
		if strings.TrimSpace(t.ID) == "" {
			return errors.Newf(errors.ErrInvalidInput, "template #%d has an empty id", i+1).
				WithDetail("index", i)
		}
		if t.Git != nil && t.Git.Repository == "" && t.Git.PathPrefix != "" {
			return errors.Newf(errors.ErrConfigValid,
				"template `%s` sets a path prefix but no git repository", t.ID).
				WithDetail("id", t.ID).
				WithDetail("path_prefix", t.Git.PathPrefix)
		}
	}
	return templates.ValidateRegistry(c.Registry())
}

// Registry converts the configured templates into registry entries.
// A git table without a repository describes a local template.
func (c *Config) Registry() types.Registry {
	registry := make(types.Registry, 0, len(c.Templates))
	for _, t := range c.Templates {
		if t.Git == nil {
			registry = append(registry, types.NewLocalTemplate(t.ID))
			continue
		}
		registry = append(registry, types.NewGitTemplate(t.ID, t.Git.Repository, t.Git.PathPrefix))
	}
	return registry
}

// Encode renders the configuration as TOML
func (c *Config) Encode() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return data, nil
}
