package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tagrel/pkg/cli/config"
	"github.com/m-mizutani/tagrel/pkg/domain/interfaces"
	"github.com/m-mizutani/tagrel/pkg/domain/model"
	"github.com/m-mizutani/tagrel/pkg/domain/types"
	"github.com/m-mizutani/tagrel/pkg/infra/git"
	"github.com/m-mizutani/tagrel/pkg/infra/term"
	"github.com/m-mizutani/tagrel/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// environment holds the process resources a run talks to
type environment struct {
	stdin     io.Reader
	stdout    io.Writer
	logOutput io.Writer
	newGit    func(cfg *config.Release) interfaces.Git
}

func defaultEnvironment() *environment {
	return &environment{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		newGit: func(cfg *config.Release) interfaces.Git {
			return git.NewClient(git.WithDir(cfg.RepoDir))
		},
	}
}

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, defaultEnvironment())
}

func run(ctx context.Context, args []string, env *environment) error {
	var (
		loggerCfg  = config.Logger{Output: env.logOutput}
		releaseCfg config.Release
		sentryCfg  config.Sentry
		logger     *slog.Logger
	)

	flags := append(loggerCfg.Flags(), releaseCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	app := &cli.Command{
		Name:      "tagrel",
		Usage:     "Tag a release commit and push the tag",
		UsageText: "tagrel [options] <major-version-number>",
		ArgsUsage: "<major-version-number>",
		Version:   types.Version,
		Flags:     flags,
		Writer:    env.stdout,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}
			logger = logger.With("run_id", uuid.NewString())

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)

			if err := sentryCfg.Configure(); err != nil {
				return nil, err
			}
			if err := releaseCfg.Load(c.IsSet); err != nil {
				return nil, err
			}
			return ctx, nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			major, err := parseMajor(c.Args().Slice())
			if err != nil {
				return err
			}

			uc := usecase.NewTagRelease(
				env.newGit(&releaseCfg),
				term.NewOperator(env.stdin, env.stdout),
				usecase.WithRemote(releaseCfg.Remote),
				usecase.WithCanonicalRepo(releaseCfg.CanonicalRepo),
				usecase.WithBuildConfig(releaseCfg.BuildConfigPath, releaseCfg.VersionField),
				usecase.WithAnnotate(releaseCfg.Annotate),
			)

			if _, err := uc.TagRelease(ctx, major); err != nil {
				return err
			}
			return nil
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
		sentryCfg.Report(err)
		return err
	}

	return nil
}

func parseMajor(args []string) (int, error) {
	if len(args) != 1 {
		return 0, goerr.New("exactly one argument <major-version-number> is required",
			goerr.V("args", args),
			goerr.T(model.ErrTagConfig))
	}

	major, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return 0, goerr.Wrap(err, "major version number must be an integer",
			goerr.V("arg", args[0]),
			goerr.T(model.ErrTagConfig))
	}
	return major, nil
}

// ExitCode returns the process exit code for err: the exit code of a failed
// git command when there is one, otherwise 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}
	return 1
}
