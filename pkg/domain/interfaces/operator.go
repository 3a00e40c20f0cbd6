package interfaces

import (
	"context"

	"github.com/m-mizutani/tagrel/pkg/domain/model"
)

// Operator is the person running the tool
type Operator interface {
	// Step announces the start of a step
	Step(ctx context.Context, msg string)

	// Present shows the resolved release plan
	Present(ctx context.Context, plan *model.ReleasePlan)

	// Confirm asks a yes/no question and blocks until answered
	Confirm(ctx context.Context, question string) (bool, error)
}
