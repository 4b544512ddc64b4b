/*
PURPOSE:
  Synchronous shell command execution with captured output.
  Everything envsnap learns about the interpreter and its packages
  flows through this package.

REQUIREMENTS:
  User-specified:
  - Run a shell command string, block until done, capture stdout/stderr.
  - A failing command must never panic or abort the pipeline.

  Implementation-discovered:
  - Callers need a typed failure (exit code + stderr), not an "Error:"
    sentinel string they have to sniff for.
  - Python snippets are easier to pass via a temp file than via -c
    (no shell-quoting of multi-line source).

ARCHITECTURE INTEGRATION:
  - Used by: internal/sysinfo, internal/probe, internal/bench,
    internal/snapshot
  - CommandRunner is an interface so tests substitute canned output.

ERROR HANDLING:
  - Non-zero exit -> *ExitError carrying the code and trimmed stderr.
  - Start failures (no /bin/sh, context cancelled) return as-is.

IMPLEMENTATION RULES:
  - Use os/exec; run through /bin/sh -c with the parent environment.
  - No retries, no timeout of our own; the context carries deadlines.

USAGE:
  out, err := runner.Shell{}.Run(ctx, "python3 -m pip freeze")

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/probe/probe.go
  - internal/bench/bench.go

MAINTENANCE:
  - Update if Windows support is ever needed (cmd /c).
*/

package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// CommandRunner executes one shell command synchronously and returns
// its trimmed standard output.
type CommandRunner interface {
	Run(ctx context.Context, command string) (string, error)
}

// ExitError reports a command that ran but exited non-zero.
type ExitError struct {
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("command exited %d: %s", e.Code, e.Stderr)
	}
	return fmt.Sprintf("command exited %d", e.Code)
}

// Shell runs commands through /bin/sh -c with the parent environment.
type Shell struct{}

// Run executes the command, blocking until completion. Output is
// captured, not streamed.
func (Shell) Run(ctx context.Context, command string) (string, error) {
	cmd := exec.CommandContext(ctx, "/bin/sh", "-c", command)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			return "", &ExitError{
				Code:   ee.ExitCode(),
				Stderr: strings.TrimSpace(stderr.String()),
			}
		}
		return "", err
	}

	return strings.TrimSpace(stdout.String()), nil
}

// Quote wraps s in single quotes so it can be interpolated into a
// shell command string.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// RunScript materializes an embedded snippet to a temp file and runs
// it with the given interpreter and arguments. The temp file is
// removed when the command completes.
func RunScript(ctx context.Context, r CommandRunner, python string, script []byte, args ...string) (string, error) {
	f, err := os.CreateTemp("", "envsnap-*.py")
	if err != nil {
		return "", fmt.Errorf("failed to stage snippet: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.Write(script); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to stage snippet: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to stage snippet: %w", err)
	}

	parts := []string{python, Quote(path)}
	for _, a := range args {
		parts = append(parts, Quote(a))
	}

	return r.Run(ctx, strings.Join(parts, " "))
}
