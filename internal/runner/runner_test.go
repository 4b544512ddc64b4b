package runner

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShell_Run_TrimsStdout(t *testing.T) {
	out, err := Shell{}.Run(context.Background(), "echo '  hello  '")
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
}

func TestShell_Run_NonexistentProgram(t *testing.T) {
	// A guaranteed-failing command must come back as a typed error
	// carrying the captured stderr, never as a panic.
	out, err := Shell{}.Run(context.Background(), "definitely-not-a-real-program-xyz")
	require.Error(t, err)
	assert.Empty(t, out)

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.NotZero(t, exitErr.Code)
	assert.NotEmpty(t, exitErr.Stderr)
	assert.Contains(t, err.Error(), exitErr.Stderr)
}

func TestShell_Run_StderrCaptured(t *testing.T) {
	_, err := Shell{}.Run(context.Background(), "echo boom >&2; exit 3")
	require.Error(t, err)

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 3, exitErr.Code)
	assert.Equal(t, "boom", exitErr.Stderr)
}

func TestQuote(t *testing.T) {
	cases := map[string]string{
		"plain":       "'plain'",
		"with space":  "'with space'",
		"it's quoted": `'it'\''s quoted'`,
		"$HOME `cmd`": "'$HOME `cmd`'",
	}
	for in, want := range cases {
		assert.Equal(t, want, Quote(in))
	}
}

type captureRunner struct {
	command string
	out     string
	err     error
}

func (c *captureRunner) Run(_ context.Context, command string) (string, error) {
	c.command = command
	return c.out, c.err
}

func TestRunScript_StagesAndQuotes(t *testing.T) {
	fake := &captureRunner{out: "ok"}

	out, err := RunScript(context.Background(), fake, "python3",
		[]byte("print('hi')"), "numpy", "matrix size")
	require.NoError(t, err)
	assert.Equal(t, "ok", out)

	parts := strings.SplitN(fake.command, " ", 2)
	assert.Equal(t, "python3", parts[0])
	assert.Contains(t, fake.command, "envsnap-")
	assert.True(t, strings.HasSuffix(fake.command, " 'numpy' 'matrix size'"))
}
