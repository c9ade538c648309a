package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgExecutor runs a ranking SQL query through a pgx pool. The query contract
// is minimal: rows come back in rank order and the first column is the
// document UUID.
type PgExecutor struct {
	name string
	pool *pgxpool.Pool
}

func NewPgExecutor(ctx context.Context, name, connStr string) (*PgExecutor, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("create pg pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping pg: %w", err)
	}

	return &PgExecutor{name: name, pool: pool}, nil
}

func (e *PgExecutor) Execute(ctx context.Context, rawQuery string, params []any) (*Execution, error) {
	start := time.Now()

	rows, err := e.pool.Query(ctx, rawQuery, params...)
	if err != nil {
		return nil, fmt.Errorf("pg query: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("pg read row: %w", err)
		}
		if len(values) == 0 {
			return nil, fmt.Errorf("pg row has no columns")
		}
		id, err := extractUUID(values[0])
		if err != nil {
			return nil, fmt.Errorf("pg extract id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pg rows: %w", err)
	}

	return &Execution{
		RankedDocIDs: ids,
		TotalMatches: int64(len(ids)),
		Latency:      time.Since(start),
	}, nil
}

func (e *PgExecutor) Name() string { return e.name }

func (e *PgExecutor) Close() error {
	e.pool.Close()
	return nil
}

func extractUUID(val any) (uuid.UUID, error) {
	switch v := val.(type) {
	case [16]byte:
		return uuid.UUID(v), nil
	case uuid.UUID:
		return v, nil
	case string:
		return uuid.Parse(v)
	default:
		return uuid.Nil, fmt.Errorf("unsupported id type %T", val)
	}
}
