package runner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rankeval/rankeval/internal/eval/engine"
	"github.com/rankeval/rankeval/internal/eval/plan"
	"github.com/rankeval/rankeval/internal/eval/suite"
)

type fakeExecutor struct {
	name   string
	ranked []uuid.UUID
	err    error
	calls  int
}

func (f *fakeExecutor) Execute(_ context.Context, _ string, _ []any) (*engine.Execution, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &engine.Execution{
		RankedDocIDs: f.ranked,
		TotalMatches: int64(len(f.ranked)),
		Latency:      time.Millisecond,
	}, nil
}

func (f *fakeExecutor) Name() string { return f.name }
func (f *fakeExecutor) Close() error { return nil }

func newIDs(n int) []uuid.UUID {
	ids := make([]uuid.UUID, n)
	for i := range ids {
		ids[i] = uuid.New()
	}
	return ids
}

func loadedSuite(queries ...suite.Query) *suite.LoadedSuite {
	return &suite.LoadedSuite{
		Suite:    &suite.TestSuite{Name: "test", Queries: queries},
		Registry: suite.NewTemplateRegistry(),
	}
}

func TestRunJob_ScoresJudgedQuery(t *testing.T) {
	ids := newIDs(5)
	exec := &fakeExecutor{name: "fake", ranked: ids}

	q := suite.Query{
		ID:           "q1",
		Engines:      map[string]suite.EngineQuery{"fake": {Query: "{}"}},
		RelevantDocs: []uuid.UUID{ids[0], ids[2], ids[4]},
	}

	r := New(Config{Depth: 100, Runs: 1})
	jr, err := r.RunJob(context.Background(), plan.Job{Name: "job", Engines: []string{"fake"}},
		loadedSuite(q), map[string]engine.Executor{"fake": exec})
	require.NoError(t, err)

	qr := jr.Results["q1"]["fake"]
	require.NoError(t, qr.Error)
	assert.True(t, qr.Scored)
	assert.InDelta(t, 32.0/45.0, qr.AP, 1e-9)
	assert.Equal(t, 3, qr.RelevantFound)
	assert.Equal(t, 3, qr.TotalRelevant)
}

func TestRunJob_UnjudgedQueryNotScored(t *testing.T) {
	ids := newIDs(3)
	exec := &fakeExecutor{name: "fake", ranked: ids}

	q := suite.Query{
		ID:      "q1",
		Engines: map[string]suite.EngineQuery{"fake": {Query: "{}"}},
	}

	r := New(DefaultConfig())
	jr, err := r.RunJob(context.Background(), plan.Job{Name: "job", Engines: []string{"fake"}},
		loadedSuite(q), map[string]engine.Executor{"fake": exec})
	require.NoError(t, err)

	qr := jr.Results["q1"]["fake"]
	require.NoError(t, qr.Error)
	assert.False(t, qr.Scored)
	assert.Equal(t, 0.0, qr.AP)
	assert.Len(t, qr.RankedDocIDs, 3)
}

func TestRunJob_ExecutorErrorRecorded(t *testing.T) {
	exec := &fakeExecutor{name: "fake", err: errors.New("connection refused")}

	q := suite.Query{
		ID:           "q1",
		Engines:      map[string]suite.EngineQuery{"fake": {Query: "{}"}},
		RelevantDocs: newIDs(1),
	}

	r := New(DefaultConfig())
	jr, err := r.RunJob(context.Background(), plan.Job{Name: "job", Engines: []string{"fake"}},
		loadedSuite(q), map[string]engine.Executor{"fake": exec})
	require.NoError(t, err)

	qr := jr.Results["q1"]["fake"]
	assert.Error(t, qr.Error)
	assert.False(t, qr.Scored)
}

func TestRunJob_DepthCapsScoring(t *testing.T) {
	ids := newIDs(5)
	exec := &fakeExecutor{name: "fake", ranked: ids}

	q := suite.Query{
		ID:           "q1",
		Engines:      map[string]suite.EngineQuery{"fake": {Query: "{}"}},
		RelevantDocs: []uuid.UUID{ids[0], ids[4]},
	}

	r := New(Config{Depth: 2, Runs: 1})
	jr, err := r.RunJob(context.Background(), plan.Job{Name: "job", Engines: []string{"fake"}},
		loadedSuite(q), map[string]engine.Executor{"fake": exec})
	require.NoError(t, err)

	qr := jr.Results["q1"]["fake"]
	require.NoError(t, qr.Error)
	assert.True(t, qr.Scored)
	// only the hit at position 0 falls inside the depth window
	assert.Equal(t, 1, qr.RelevantFound)
	assert.Equal(t, 2, qr.TotalRelevant)
	assert.InDelta(t, 0.5, qr.AP, 1e-9)
}

func TestRunJob_WarmupAndRuns(t *testing.T) {
	ids := newIDs(2)
	exec := &fakeExecutor{name: "fake", ranked: ids}

	q := suite.Query{
		ID:      "q1",
		Engines: map[string]suite.EngineQuery{"fake": {Query: "{}"}},
	}

	r := New(Config{Depth: 10, WarmupRuns: 2, Runs: 3})
	_, err := r.RunJob(context.Background(), plan.Job{Name: "job", Engines: []string{"fake"}},
		loadedSuite(q), map[string]engine.Executor{"fake": exec})
	require.NoError(t, err)

	assert.Equal(t, 5, exec.calls)
}

func TestRunJob_UnknownExecutor(t *testing.T) {
	r := New(DefaultConfig())
	_, err := r.RunJob(context.Background(), plan.Job{Name: "job", Engines: []string{"missing"}},
		loadedSuite(), map[string]engine.Executor{})
	assert.Error(t, err)
}

func TestRunJob_QueryNotTargetingEngineSkipped(t *testing.T) {
	exec := &fakeExecutor{name: "fake", ranked: newIDs(2)}

	q := suite.Query{
		ID:      "q1",
		Engines: map[string]suite.EngineQuery{"other": {Query: "{}"}},
	}

	r := New(DefaultConfig())
	jr, err := r.RunJob(context.Background(), plan.Job{Name: "job", Engines: []string{"fake"}},
		loadedSuite(q), map[string]engine.Executor{"fake": exec})
	require.NoError(t, err)

	_, ok := jr.Results["q1"]["fake"]
	assert.False(t, ok)
	assert.Equal(t, 0, exec.calls)
}
