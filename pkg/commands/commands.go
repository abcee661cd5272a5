// Package commands provides high-level command implementations for vitex.
//
// This package contains the command orchestration layer that coordinates
// between the CLI interface and the template pipeline.
//
// Each command is implemented in its own subdirectory:
//   - newproject/ - NewProject command
//   - sync/       - SyncTemplates command
//   - validate/   - ValidateTemplates command
//   - list/       - ListTemplates command
//   - purge/      - PurgeCloned command
//
// This file re-exports the command functions so the CLI depends on a single
// package.
package commands

import (
	"context"

	"github.com/arthur-debert/vitex/pkg/commands/list"
	"github.com/arthur-debert/vitex/pkg/commands/newproject"
	"github.com/arthur-debert/vitex/pkg/commands/purge"
	"github.com/arthur-debert/vitex/pkg/commands/sync"
	"github.com/arthur-debert/vitex/pkg/commands/validate"
	"github.com/arthur-debert/vitex/pkg/types"
)

// NewProject creates a project from a template.
type NewProjectOptions = newproject.NewProjectOptions

func NewProject(opts NewProjectOptions) (*types.NewProjectResult, error) {
	return newproject.NewProject(opts)
}

// SyncTemplates clones or pulls every git template.
type SyncTemplatesOptions = sync.SyncTemplatesOptions

func SyncTemplates(ctx context.Context, opts SyncTemplatesOptions) (*types.SyncTemplatesResult, error) {
	return sync.SyncTemplates(ctx, opts)
}

// ValidateTemplates validates every configured template.
type ValidateTemplatesOptions = validate.ValidateTemplatesOptions

func ValidateTemplates(opts ValidateTemplatesOptions) (*types.ValidateTemplatesResult, error) {
	return validate.ValidateTemplates(opts)
}

// ListTemplates describes the configured templates.
type ListTemplatesOptions = list.ListTemplatesOptions

func ListTemplates(opts ListTemplatesOptions) (*types.ListTemplatesResult, error) {
	return list.ListTemplates(opts)
}

// PurgeCloned deletes the cloned templates.
type PurgeOptions = purge.PurgeOptions

func PurgeCloned(opts PurgeOptions) (*types.PurgeResult, error) {
	return purge.PurgeCloned(opts)
}
