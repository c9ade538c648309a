package engine

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgtesting "github.com/rankeval/rankeval/pkg/testing"
)

const docsSchema = `
CREATE TABLE docs (
    id    UUID PRIMARY KEY,
    title TEXT NOT NULL,
    score DOUBLE PRECISION NOT NULL
);
`

func TestPgExecutor_Execute(t *testing.T) {
	ctx := context.Background()
	pg := pkgtesting.NewPGContainer(ctx, t, docsSchema)

	exec, err := NewPgExecutor(ctx, "pg-native", pg.ConnString)
	require.NoError(t, err)
	defer exec.Close()

	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	for i, id := range ids {
		_, err := exec.pool.Exec(ctx,
			"INSERT INTO docs (id, title, score) VALUES ($1, $2, $3)",
			id, "doc", float64(len(ids)-i))
		require.NoError(t, err)
	}

	result, err := exec.Execute(ctx,
		"SELECT id FROM docs ORDER BY score DESC", nil)
	require.NoError(t, err)

	assert.Equal(t, ids, result.RankedDocIDs)
	assert.Equal(t, int64(3), result.TotalMatches)
	assert.Greater(t, result.Latency.Nanoseconds(), int64(0))
}

func TestPgExecutor_Execute_EmptyResult(t *testing.T) {
	ctx := context.Background()
	pg := pkgtesting.NewPGContainer(ctx, t, docsSchema)

	exec, err := NewPgExecutor(ctx, "pg-native", pg.ConnString)
	require.NoError(t, err)
	defer exec.Close()

	result, err := exec.Execute(ctx, "SELECT id FROM docs", nil)
	require.NoError(t, err)
	assert.Empty(t, result.RankedDocIDs)
}

func TestPgExecutor_Execute_BadQuery(t *testing.T) {
	ctx := context.Background()
	pg := pkgtesting.NewPGContainer(ctx, t, docsSchema)

	exec, err := NewPgExecutor(ctx, "pg-native", pg.ConnString)
	require.NoError(t, err)
	defer exec.Close()

	_, err = exec.Execute(ctx, "SELECT id FROM missing_table", nil)
	assert.Error(t, err)
}

func TestExtractUUID(t *testing.T) {
	id := uuid.New()

	got, err := extractUUID([16]byte(id))
	require.NoError(t, err)
	assert.Equal(t, id, got)

	got, err = extractUUID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = extractUUID(42)
	assert.Error(t, err)
}
