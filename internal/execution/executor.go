package execution

import (
	"context"

	"noserun/internal/domain"
)

// Launcher runs a resolved invocation and captures its output
type Launcher interface {
	Launch(ctx context.Context, inv domain.Invocation) (domain.ExecutionResult, error)
}

// Progress is notified while a subprocess is in flight
type Progress interface {
	Start(description string)
	Stop()
}
