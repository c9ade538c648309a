package engine

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Executor runs one raw query against a search engine and returns the ranked
// document IDs it produced. Executors rank; they never score.
type Executor interface {
	Execute(ctx context.Context, query string, params []any) (*Execution, error)
	Name() string
	Close() error
}

type Execution struct {
	RankedDocIDs []uuid.UUID
	TotalMatches int64
	Latency      time.Duration
}
