package interfaces

import (
	"context"

	"github.com/m-mizutani/tagrel/pkg/domain/model"
)

// Git defines the version control operations needed to tag a release
type Git interface {
	// Remotes lists configured remotes (`git remote -v`)
	Remotes(ctx context.Context) ([]model.Remote, error)

	// Fetch fetches a remote
	Fetch(ctx context.Context, remote string) error

	// ShowFile returns the content of path at ref
	ShowFile(ctx context.Context, ref, path string) ([]byte, error)

	// RevParse resolves ref to a full commit hash
	RevParse(ctx context.Context, ref string) (string, error)

	// LogOneline returns the one-line log summary of ref
	LogOneline(ctx context.Context, ref string) (string, error)

	// CreateTag creates tag at commit. An empty message creates a lightweight tag.
	CreateTag(ctx context.Context, tag, commit, message string) error

	// PushTag pushes tag to remote
	PushTag(ctx context.Context, remote, tag string) error
}
