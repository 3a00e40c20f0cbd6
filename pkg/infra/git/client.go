package git

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tagrel/pkg/domain/interfaces"
	"github.com/m-mizutani/tagrel/pkg/domain/model"
)

type client struct {
	binary string
	dir    string
	stderr io.Writer
	env    []string
}

// Option configures the git client
type Option func(*client)

// WithDir sets the working copy the commands run in
func WithDir(dir string) Option {
	return func(c *client) {
		c.dir = dir
	}
}

// WithBinary sets the git executable
func WithBinary(binary string) Option {
	return func(c *client) {
		c.binary = binary
	}
}

// WithStderr sets where git's own error output is echoed
func WithStderr(w io.Writer) Option {
	return func(c *client) {
		c.stderr = w
	}
}

// WithEnv appends environment variables to every git command
func WithEnv(env ...string) Option {
	return func(c *client) {
		c.env = append(c.env, env...)
	}
}

// NewClient creates a git client backed by the git command
func NewClient(opts ...Option) interfaces.Git {
	c := &client{
		binary: "git",
		dir:    ".",
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// run executes git and returns its stdout. A non-zero exit is returned as an
// error tagged ErrTagVCS that wraps *exec.ExitError.
func (c *client) run(ctx context.Context, args ...string) ([]byte, error) {
	logger := ctxlog.From(ctx)
	logger.Debug("Running git command", "args", args, "dir", c.dir)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.binary, append([]string{"-C", c.dir}, args...)...)
	cmd.Stdout = &stdout
	cmd.Stderr = io.MultiWriter(&stderr, c.stderr)
	if len(c.env) > 0 {
		cmd.Env = append(os.Environ(), c.env...)
	}

	if err := cmd.Run(); err != nil {
		opts := []goerr.Option{
			goerr.V("args", args),
			goerr.V("stderr", strings.TrimSpace(stderr.String())),
			goerr.T(model.ErrTagVCS),
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			opts = append(opts, goerr.V("exit_code", exitErr.ExitCode()))
		}
		return nil, goerr.Wrap(err, "git command failed", opts...)
	}

	return stdout.Bytes(), nil
}

func (c *client) runString(ctx context.Context, args ...string) (string, error) {
	out, err := c.run(ctx, args...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// Remotes lists configured remotes
func (c *client) Remotes(ctx context.Context) ([]model.Remote, error) {
	out, err := c.run(ctx, "remote", "-v")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list remotes")
	}
	return model.ParseRemotes(string(out)), nil
}

// Fetch fetches a remote
func (c *client) Fetch(ctx context.Context, remote string) error {
	if _, err := c.run(ctx, "fetch", remote); err != nil {
		return goerr.Wrap(err, "failed to fetch remote", goerr.V("remote", remote))
	}
	return nil
}

// ShowFile returns the content of path at ref
func (c *client) ShowFile(ctx context.Context, ref, path string) ([]byte, error) {
	out, err := c.run(ctx, "show", ref+":"+path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to show file at ref",
			goerr.V("ref", ref),
			goerr.V("path", path))
	}
	return out, nil
}

// RevParse resolves ref to a full commit hash
func (c *client) RevParse(ctx context.Context, ref string) (string, error) {
	commit, err := c.runString(ctx, "rev-parse", ref)
	if err != nil {
		return "", goerr.Wrap(err, "failed to resolve ref", goerr.V("ref", ref))
	}
	return commit, nil
}

// LogOneline returns the one-line log summary of ref
func (c *client) LogOneline(ctx context.Context, ref string) (string, error) {
	line, err := c.runString(ctx, "log", "-n1", "--oneline", ref)
	if err != nil {
		return "", goerr.Wrap(err, "failed to read log", goerr.V("ref", ref))
	}
	return line, nil
}

// CreateTag creates tag at commit. An empty message creates a lightweight tag.
func (c *client) CreateTag(ctx context.Context, tag, commit, message string) error {
	args := []string{"tag", tag, commit}
	if message != "" {
		args = []string{"tag", "-a", tag, "-m", message, commit}
	}

	if _, err := c.run(ctx, args...); err != nil {
		return goerr.Wrap(err, "failed to create tag",
			goerr.V("tag", tag),
			goerr.V("commit", commit))
	}
	return nil
}

// PushTag pushes tag to remote
func (c *client) PushTag(ctx context.Context, remote, tag string) error {
	if _, err := c.run(ctx, "push", remote, tag); err != nil {
		return goerr.Wrap(err, "failed to push tag",
			goerr.V("remote", remote),
			goerr.V("tag", tag))
	}
	return nil
}
