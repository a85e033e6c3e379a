package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// CommandError reports a git invocation that could not be started or exited non-zero.
type CommandError struct {
	Args   []string
	Output string // captured stderr
	Err    error
}

func (e *CommandError) Error() string {
	cmd := strings.Join(e.Args, " ")
	if e.Output != "" {
		return fmt.Sprintf("git %s failed: %v: %s", cmd, e.Err, e.Output)
	}
	return fmt.Sprintf("git %s failed: %v", cmd, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit code, or -1 if git never ran.
func (e *CommandError) ExitCode() int {
	var exitErr *exec.ExitError
	if errors.As(e.Err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// ExecRunner runs the git binary as a child process.
// Arguments are handed to the process as-is; no shell is involved.
type ExecRunner struct {
	Binary string
	Dir    string
}

// NewExecRunner creates a runner for the given git binary working in dir.
// An empty binary means "git" from PATH.
func NewExecRunner(binary, dir string) *ExecRunner {
	if strings.TrimSpace(binary) == "" {
		binary = "git"
	}
	return &ExecRunner{Binary: binary, Dir: dir}
}

// Run executes git and returns its standard output.
func (r *ExecRunner) Run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, r.Binary, args...)
	cmd.Dir = r.Dir
	// Unborn-HEAD detection reads git's stderr, which must stay untranslated.
	cmd.Env = append(os.Environ(), "LC_ALL=C", "LANGUAGE=C")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &CommandError{
			Args:   args,
			Output: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}
	return stdout.String(), nil
}
