// Package git synchronizes git-backed templates by shelling out to git.
package git

import (
	"context"
	"strings"

	"github.com/arthur-debert/vitex/pkg/errors"
	"github.com/arthur-debert/vitex/pkg/exec"
	"github.com/arthur-debert/vitex/pkg/filesystem"
	"github.com/arthur-debert/vitex/pkg/logging"
	"github.com/arthur-debert/vitex/pkg/types"
	"github.com/rs/zerolog"
)

// Action is what a synchronization did to a clone
type Action string

const (
	// ActionCloned means the repository was cloned for the first time
	ActionCloned Action = "cloned"

	// ActionUpdated means a pull brought in new commits
	ActionUpdated Action = "updated"

	// ActionUpToDate means a pull found nothing new
	ActionUpToDate Action = "up-to-date"
)

// upToDateOutput is what `git pull` prints when there is nothing to fetch
const upToDateOutput = "Already up to date."

// SyncResult describes one synchronization
type SyncResult struct {
	Action Action

	// Output is git's trimmed stdout
	Output string
}

// Synchronizer brings a local clone of a repository up to date
type Synchronizer interface {
	// Synchronize clones repository into targetDir when targetDir is
	// absent and pulls inside it otherwise.
	Synchronize(ctx context.Context, repository, targetDir string) (SyncResult, error)
}

// CLISynchronizer implements Synchronizer with the git binary
type CLISynchronizer struct {
	runner exec.CommandRunner
	fs     types.FS
	logger zerolog.Logger
}

// NewCLISynchronizer creates a synchronizer running git through runner
func NewCLISynchronizer(runner exec.CommandRunner, fs types.FS) *CLISynchronizer {
	return &CLISynchronizer{
		runner: runner,
		fs:     fs,
		logger: logging.GetLogger("git"),
	}
}

// git must fail instead of waiting for credentials on a terminal it cannot see
var gitEnv = map[string]string{"GIT_TERMINAL_PROMPT": "0"}

// Synchronize implements Synchronizer
func (s *CLISynchronizer) Synchronize(ctx context.Context, repository, targetDir string) (SyncResult, error) {
	exists, err := filesystem.Exists(s.fs, targetDir)
	if err != nil {
		return SyncResult{}, errors.Wrapf(err, errors.ErrFileAccess, "cannot access clone directory %s", targetDir).
			WithDetail("path", targetDir)
	}

	if !exists {
		return s.clone(ctx, repository, targetDir)
	}
	return s.pull(ctx, repository, targetDir)
}

func (s *CLISynchronizer) clone(ctx context.Context, repository, targetDir string) (SyncResult, error) {
	s.logger.Debug().
		Str("repository", repository).
		Str("path", targetDir).
		Msg("Clone does not exist: cloning")

	result, err := s.runner.Run(ctx, "git", []string{"clone", repository, targetDir}, exec.RunOpts{Env: gitEnv})
	if err != nil {
		return SyncResult{}, errors.Wrap(err, errors.ErrGitExecute, "failed to run git clone").
			WithDetail("repository", repository)
	}
	if !result.Success() {
		return SyncResult{}, errors.Newf(errors.ErrGitClone, "could not clone git repo (%s)", repository).
			WithDetail("repository", repository).
			WithDetail("path", targetDir).
			WithDetail("stderr", strings.TrimSpace(result.Stderr))
	}

	s.logger.Info().Str("repository", repository).Msg("Successfully cloned template")
	return SyncResult{Action: ActionCloned, Output: strings.TrimSpace(result.Stdout)}, nil
}

func (s *CLISynchronizer) pull(ctx context.Context, repository, targetDir string) (SyncResult, error) {
	s.logger.Debug().Str("path", targetDir).Msg("Updating clone")

	result, err := s.runner.Run(ctx, "git", []string{"-C", targetDir, "pull"}, exec.RunOpts{Env: gitEnv})
	if err != nil {
		return SyncResult{}, errors.Wrap(err, errors.ErrGitExecute, "failed to run git pull").
			WithDetail("repository", repository)
	}
	if !result.Success() {
		return SyncResult{}, errors.Newf(errors.ErrGitPull, "could not pull from git repo (%s)", repository).
			WithDetail("repository", repository).
			WithDetail("path", targetDir).
			WithDetail("stderr", strings.TrimSpace(result.Stderr))
	}

	out := strings.TrimSpace(result.Stdout)
	if out == upToDateOutput {
		s.logger.Info().Str("path", targetDir).Msg("Clone is up to date")
		return SyncResult{Action: ActionUpToDate, Output: out}, nil
	}

	s.logger.Info().Str("path", targetDir).Str("output", out).Msg("Clone was updated")
	return SyncResult{Action: ActionUpdated, Output: out}, nil
}
