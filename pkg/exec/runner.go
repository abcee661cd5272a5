// Package exec runs external commands behind an interface that tests can stub.
package exec

import (
	"bytes"
	"context"
	stderrors "errors"
	"os/exec"
	"strings"

	"github.com/arthur-debert/vitex/pkg/logging"
	"github.com/rs/zerolog"
)

// CmdResult holds the result of a command execution
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Success reports whether the command exited with status zero
func (r CmdResult) Success() bool {
	return r.ExitCode == 0
}

// RunOpts holds optional parameters for command execution
type RunOpts struct {
	Dir string            // working directory (optional)
	Env map[string]string // extra environment variables (overlay)
}

// CommandRunner is the interface for running external commands.
type CommandRunner interface {
	// Run executes a command and returns the result.
	// A process that exits non-zero is not an error: its exit code is set
	// on the result. Errors are reserved for execution failures such as a
	// missing binary or a canceled context.
	Run(ctx context.Context, name string, args []string, opts RunOpts) (CmdResult, error)
}

// RealRunner runs commands with os/exec
type RealRunner struct {
	logger zerolog.Logger
}

// NewRealRunner creates a new RealRunner
func NewRealRunner() *RealRunner {
	return &RealRunner{logger: logging.GetLogger("exec")}
}

// Run executes the command and captures stdout and stderr
func (r *RealRunner) Run(ctx context.Context, name string, args []string, opts RunOpts) (CmdResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if opts.Dir != "" {
		cmd.Dir = opts.Dir
	}

	if len(opts.Env) > 0 {
		cmd.Env = cmd.Environ()
		for k, v := range opts.Env {
			cmd.Env = append(cmd.Env, k+"="+v)
		}
	}

	r.logger.Debug().
		Str("command", name).
		Str("args", strings.Join(args, " ")).
		Str("dir", opts.Dir).
		Msg("Running command")

	err := cmd.Run()

	result := CmdResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			r.logger.Debug().Int("exit_code", result.ExitCode).Str("command", name).Msg("Command failed")
			return result, nil
		}
		return result, err
	}

	return result, nil
}
