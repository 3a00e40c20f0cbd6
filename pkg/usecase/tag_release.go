package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tagrel/pkg/domain/interfaces"
	"github.com/m-mizutani/tagrel/pkg/domain/model"
)

const confirmQuestion = "Would you like to add the tag to the commit listed above?"

type tagRelease struct {
	git      interfaces.Git
	operator interfaces.Operator

	remote          string
	canonicalRepo   string
	buildConfigPath string
	versionField    string
	annotate        bool
}

// Option configures the tag release use case
type Option func(*tagRelease)

// WithRemote uses remote as is instead of looking it up by canonical repository
func WithRemote(remote string) Option {
	return func(uc *tagRelease) {
		uc.remote = remote
	}
}

// WithCanonicalRepo sets the "owner/name" repository the remote must point at
func WithCanonicalRepo(repo string) Option {
	return func(uc *tagRelease) {
		uc.canonicalRepo = repo
	}
}

// WithBuildConfig sets the build configuration path and the field holding the version
func WithBuildConfig(path, versionField string) Option {
	return func(uc *tagRelease) {
		uc.buildConfigPath = path
		uc.versionField = versionField
	}
}

// WithAnnotate creates annotated tags instead of lightweight ones
func WithAnnotate(annotate bool) Option {
	return func(uc *tagRelease) {
		uc.annotate = annotate
	}
}

// NewTagRelease creates a new instance of TagReleaseUseCase
func NewTagRelease(git interfaces.Git, operator interfaces.Operator, opts ...Option) interfaces.TagReleaseUseCase {
	uc := &tagRelease{
		git:             git,
		operator:        operator,
		canonicalRepo:   "mozilla/application-services",
		buildConfigPath: ".buildconfig-android.yml",
		versionField:    "libraryVersion",
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// TagRelease resolves the release of major, asks for confirmation and publishes the tag
func (uc *tagRelease) TagRelease(ctx context.Context, major int) (*model.TagResult, error) {
	logger := ctxlog.From(ctx)

	remote, err := uc.resolveRemote(ctx)
	if err != nil {
		return nil, err
	}

	plan := &model.ReleasePlan{
		Major:  major,
		Remote: remote,
		Branch: model.NewRefNames(major, 0).Release,
	}
	logger.Info("Resolved release branch", "remote", plan.Remote, "branch", plan.Branch)

	uc.operator.Step(ctx, "Getting version number")
	if err := uc.lookupVersion(ctx, plan); err != nil {
		return nil, err
	}

	uc.operator.Step(ctx, "Getting commit")
	if err := uc.resolveCommit(ctx, plan); err != nil {
		return nil, err
	}

	uc.operator.Present(ctx, plan)
	ok, err := uc.operator.Confirm(ctx, confirmQuestion)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get confirmation")
	}
	if !ok {
		logger.Info("Tagging declined by operator", "tag", plan.Tag)
		return &model.TagResult{Plan: plan, Published: false}, nil
	}

	if err := uc.publish(ctx, plan); err != nil {
		return nil, err
	}

	logger.Info("Published release tag",
		"tag", plan.Tag,
		"commit", plan.Commit,
		"remote", plan.Remote,
	)
	return &model.TagResult{Plan: plan, Published: true}, nil
}

func (uc *tagRelease) resolveRemote(ctx context.Context) (string, error) {
	if uc.remote != "" {
		return uc.remote, nil
	}

	remotes, err := uc.git.Remotes(ctx)
	if err != nil {
		return "", goerr.Wrap(err, "failed to resolve remote")
	}

	name, err := model.FindPushRemote(remotes, uc.canonicalRepo)
	if err != nil {
		return "", goerr.Wrap(err, "failed to resolve remote")
	}

	ctxlog.From(ctx).Debug("Found canonical remote", "remote", name, "repository", uc.canonicalRepo)
	return name, nil
}

func (uc *tagRelease) lookupVersion(ctx context.Context, plan *model.ReleasePlan) error {
	if err := uc.git.Fetch(ctx, plan.Remote); err != nil {
		return goerr.Wrap(err, "failed to look up version")
	}

	data, err := uc.git.ShowFile(ctx, plan.RemoteRef(), uc.buildConfigPath)
	if err != nil {
		return goerr.Wrap(err, "failed to look up version")
	}

	cfg, err := model.ParseBuildConfig(data)
	if err != nil {
		return goerr.Wrap(err, "failed to look up version", goerr.V("path", uc.buildConfigPath))
	}

	version, err := cfg.Version(uc.versionField)
	if err != nil {
		return goerr.Wrap(err, "failed to look up version", goerr.V("path", uc.buildConfigPath))
	}

	plan.Version = version
	plan.Tag = model.TagName(version)
	return nil
}

func (uc *tagRelease) resolveCommit(ctx context.Context, plan *model.ReleasePlan) error {
	commit, err := uc.git.RevParse(ctx, plan.RemoteRef())
	if err != nil {
		return goerr.Wrap(err, "failed to resolve commit")
	}

	logLine, err := uc.git.LogOneline(ctx, plan.RemoteRef())
	if err != nil {
		return goerr.Wrap(err, "failed to resolve commit")
	}

	plan.Commit = commit
	plan.LogLine = logLine
	return nil
}

func (uc *tagRelease) publish(ctx context.Context, plan *model.ReleasePlan) error {
	var message string
	if uc.annotate {
		message = "Release " + plan.Tag
	}

	if err := uc.git.CreateTag(ctx, plan.Tag, plan.Commit, message); err != nil {
		return goerr.Wrap(err, "failed to publish tag")
	}

	if err := uc.git.PushTag(ctx, plan.Remote, plan.Tag); err != nil {
		return goerr.Wrap(err, "failed to publish tag")
	}
	return nil
}
