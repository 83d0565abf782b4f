package exec

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"time"
)

// ExecutionResult holds the outcome of a command execution.
type ExecutionResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Executor defines an interface for running external commands in a given
// working directory. This allows for mocking in tests.
type Executor interface {
	Run(dir string, command string, args ...string) (*ExecutionResult, error)
}

// CommandExecutor is a concrete implementation of the Executor interface
// that runs actual commands on the host system, each bounded by a timeout.
type CommandExecutor struct {
	timeout time.Duration
}

// NewCommandExecutor creates a new CommandExecutor. A zero timeout leaves
// commands unbounded.
func NewCommandExecutor(timeout time.Duration) *CommandExecutor {
	return &CommandExecutor{timeout: timeout}
}

// Run executes the given command in dir and returns its result. An empty
// dir runs the command in the current working directory.
func (e *CommandExecutor) Run(dir string, command string, args ...string) (*ExecutionResult, error) {
	ctx := context.Background()
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	if ctx.Err() == context.DeadlineExceeded {
		return nil, fmt.Errorf("command timed out after %s: %w", e.timeout, ctx.Err())
	}

	// cmd.Run() returns an error for non-zero exit codes, but we surface
	// the exit code explicitly. Only other kinds of errors (e.g. command
	// not found) are returned.
	if err != nil {
		if _, ok := err.(*exec.ExitError); !ok {
			return nil, err
		}
	}

	return &ExecutionResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: cmd.ProcessState.ExitCode(),
	}, nil
}
