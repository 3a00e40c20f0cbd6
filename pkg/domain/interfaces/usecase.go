package interfaces

import (
	"context"

	"github.com/m-mizutani/tagrel/pkg/domain/model"
)

// TagReleaseUseCase defines the release tagging flow
type TagReleaseUseCase interface {
	// TagRelease resolves the release of major, asks for confirmation and publishes the tag
	TagRelease(ctx context.Context, major int) (*model.TagResult, error)
}
