// Package brew adapts the brew command-line tool to the Homebrew port.
package brew

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"go.trai.ch/zerr"
)

// ExecRunner runs external commands via os/exec. It blocks until the
// process exits and its output streams are fully drained.
type ExecRunner struct{}

// NewExecRunner creates a new ExecRunner.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes the command and returns its stdout. On failure the error
// carries the command line, exit code and trimmed stderr as metadata so the
// collaborator's diagnostic survives to the report.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // arguments are fixed brew subcommands
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			// Cancellation surfaces as the context error so callers can
			// distinguish an interrupt from a tool failure.
			return "", ctx.Err()
		}

		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		wrapped := zerr.With(zerr.Wrap(err, "command failed"), "command", name+" "+strings.Join(args, " "))
		wrapped = zerr.With(wrapped, "exit_code", exitCode)
		return "", zerr.With(wrapped, "stderr", strings.TrimSpace(stderr.String()))
	}

	return stdout.String(), nil
}
