package pool

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rankeval/rankeval/internal/eval/engine"
)

func newIDs(n int) []uuid.UUID {
	ids := make([]uuid.UUID, n)
	for i := range ids {
		ids[i] = uuid.New()
	}
	return ids
}

func TestPoolResults_MergesAcrossEngines(t *testing.T) {
	ids := newIDs(4)

	results := map[string]*engine.Execution{
		"es": {RankedDocIDs: []uuid.UUID{ids[0], ids[1], ids[2]}},
		"pg": {RankedDocIDs: []uuid.UUID{ids[1], ids[3]}},
	}

	docs := PoolResults(results, 10)
	require.Len(t, docs, 4)

	bySources := make(map[uuid.UUID][]string)
	for _, d := range docs {
		bySources[d.DocID] = d.Sources
	}

	assert.ElementsMatch(t, []string{"es"}, bySources[ids[0]])
	assert.ElementsMatch(t, []string{"es", "pg"}, bySources[ids[1]])
	assert.ElementsMatch(t, []string{"pg"}, bySources[ids[3]])
}

func TestPoolResults_RespectsDepth(t *testing.T) {
	ids := newIDs(5)

	results := map[string]*engine.Execution{
		"es": {RankedDocIDs: ids},
	}

	docs := PoolResults(results, 2)
	assert.Len(t, docs, 2)
}

func TestPoolResults_NilExecutionSkipped(t *testing.T) {
	ids := newIDs(2)

	results := map[string]*engine.Execution{
		"es": {RankedDocIDs: ids},
		"pg": nil,
	}

	docs := PoolResults(results, 10)
	assert.Len(t, docs, 2)
}
