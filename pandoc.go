package mdmath

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/alnah/go-mdmath/internal/hints"
	"github.com/alnah/go-mdmath/internal/process"
)

// Default collaborator invocation.
const DefaultPandocCommand = "pandoc"

// DefaultPandocArgs returns the arguments passed to pandoc when none are
// configured. A fresh slice is returned on every call.
func DefaultPandocArgs() []string {
	return []string{"--mathml"}
}

// MathConverter abstracts math-to-markup conversion to allow different backends.
// expr includes its dollar delimiters.
type MathConverter interface {
	ToMarkup(ctx context.Context, expr string) (string, error)
}

// CommandRunner abstracts command execution to enable testing without real subprocesses.
type CommandRunner interface {
	Run(ctx context.Context, stdin string, name string, args ...string) (stdout string, stderr string, err error)
}

// ExecRunner implements CommandRunner using os/exec.
// The child runs in its own process group, which is killed when ctx is done.
type ExecRunner struct{}

func (r *ExecRunner) Run(ctx context.Context, stdin string, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...) // #nosec G204 -- converter command is user-configured
	cmd.Stdin = strings.NewReader(stdin)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	process.SetProcessGroup(cmd)
	cmd.Cancel = func() error {
		process.KillProcessGroup(cmd.Process.Pid)
		return nil
	}

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// PandocConverter converts math expressions to markup by invoking the Pandoc CLI
// once per expression.
type PandocConverter struct {
	Runner  CommandRunner
	Command string
	Args    []string
}

// NewPandocConverter creates a PandocConverter running "pandoc --mathml".
func NewPandocConverter() *PandocConverter {
	return &PandocConverter{
		Runner:  &ExecRunner{},
		Command: DefaultPandocCommand,
		Args:    DefaultPandocArgs(),
	}
}

// ToMarkup feeds expr to the converter on stdin and returns its stdout unchanged.
// A non-zero exit status is reported as ErrConversion, with the converter's
// stderr in the message.
func (c *PandocConverter) ToMarkup(ctx context.Context, expr string) (string, error) {
	command := c.Command
	if command == "" {
		command = DefaultPandocCommand
	}

	stdout, stderr, err := c.Runner.Run(ctx, expr, command, c.Args...)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("%w: %w: %s%s", ErrConversion, ErrConverterNotFound, command, hints.ForConverterNotFound(command))
		}
		if msg := strings.TrimSpace(stderr); msg != "" {
			return "", fmt.Errorf("%w: %s: %s: %w", ErrConversion, command, msg, err)
		}
		return "", fmt.Errorf("%w: %s: %w", ErrConversion, command, err)
	}

	return stdout, nil
}
