package runner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rankeval/rankeval/internal/eval/engine"
	"github.com/rankeval/rankeval/internal/eval/metrics"
	"github.com/rankeval/rankeval/internal/eval/plan"
	"github.com/rankeval/rankeval/internal/eval/suite"
)

type Runner struct {
	config Config
}

func New(cfg Config) *Runner {
	return &Runner{config: cfg}
}

func (r *Runner) RunAll(
	ctx context.Context,
	p *plan.EvalPlan,
	executors map[string]engine.Executor,
) (*EvalResult, error) {
	er := &EvalResult{Config: r.config}

	for _, job := range p.Jobs {
		loaded, err := suite.LoadFromFile(job.Suite)
		if err != nil {
			return nil, fmt.Errorf("load suite for job %q: %w", job.Name, err)
		}

		jr, err := r.RunJob(ctx, job, loaded, executors)
		if err != nil {
			return nil, fmt.Errorf("run job %q: %w", job.Name, err)
		}
		er.Jobs = append(er.Jobs, jr)
	}

	return er, nil
}

func (r *Runner) RunJob(
	ctx context.Context,
	job plan.Job,
	loaded *suite.LoadedSuite,
	executors map[string]engine.Executor,
) (*JobResult, error) {
	jobExecutors := make(map[string]engine.Executor)
	for _, engName := range job.Engines {
		exec, ok := executors[engName]
		if !ok {
			return nil, fmt.Errorf("executor %q not found", engName)
		}
		jobExecutors[engName] = exec
	}

	jr := &JobResult{
		JobName:     job.Name,
		Results:     make(map[string]map[string]QueryResult),
		EngineNames: job.Engines,
	}

	r.runQueries(ctx, jr, loaded.Suite.Queries, loaded.Registry, jobExecutors)

	return jr, nil
}

func (r *Runner) runQueries(
	ctx context.Context,
	jr *JobResult,
	queries []suite.Query,
	registry *suite.TemplateRegistry,
	executors map[string]engine.Executor,
) {
	for i := range queries {
		q := &queries[i]
		jr.QueryOrder = append(jr.QueryOrder, q.ID)
		jr.Results[q.ID] = make(map[string]QueryResult)
		relevant := q.RelevantSet()

		for engName, exec := range executors {
			resolved, targets, err := q.ResolveEngineQuery(engName, registry)
			if err != nil {
				qr := QueryResult{
					QueryID:    q.ID,
					JobName:    jr.JobName,
					EngineName: engName,
					Error:      fmt.Errorf("resolve query: %w", err),
				}
				jr.Results[q.ID][engName] = qr
				slog.Warn("resolve query failed", "query", q.ID, "engine", engName, "error", err)
				continue
			}
			if !targets {
				continue
			}

			result := r.executeWithWarmup(ctx, exec, resolved, nil)

			qr := QueryResult{
				QueryID:      q.ID,
				JobName:      jr.JobName,
				EngineName:   engName,
				RankedDocIDs: result.rankedIDs,
				TotalMatches: result.totalMatches,
				Latency:      result.latencyStats,
				Error:        result.err,
			}

			if result.err == nil && len(relevant) > 0 {
				qr = r.score(qr, relevant)
			}

			jr.Results[q.ID][engName] = qr

			if result.err != nil {
				slog.Warn("query failed", "query", q.ID, "engine", engName, "error", result.err)
			}
		}
	}
}

// score maps the ranked IDs against the relevant set and computes average
// precision for the query. The ranked list is capped at the configured depth
// before scoring, mirroring what pooling sees.
func (r *Runner) score(qr QueryResult, relevant map[uuid.UUID]bool) QueryResult {
	ranked := qr.RankedDocIDs
	if r.config.Depth > 0 && len(ranked) > r.config.Depth {
		ranked = ranked[:r.config.Depth]
	}

	ranks := metrics.RelevantRanks(ranked, relevant)
	ap, err := metrics.AveragePrecision(ranks, len(relevant))
	if err != nil {
		qr.Error = fmt.Errorf("score query %q: %w", qr.QueryID, err)
		return qr
	}

	qr.AP = ap
	qr.Scored = true
	qr.RelevantFound = len(ranks)
	qr.TotalRelevant = len(relevant)
	return qr
}

type execResult struct {
	rankedIDs    []uuid.UUID
	totalMatches int64
	latencyStats LatencyStats
	err          error
}

func (r *Runner) executeWithWarmup(
	ctx context.Context,
	exec engine.Executor,
	query string,
	params []any,
) execResult {
	for i := 0; i < r.config.WarmupRuns; i++ {
		_, _ = exec.Execute(ctx, query, params)
	}

	runs := r.config.Runs
	if runs < 1 {
		runs = 1
	}

	var latencies []time.Duration
	var lastExec *engine.Execution
	var lastErr error

	for i := 0; i < runs; i++ {
		result, err := exec.Execute(ctx, query, params)
		if err != nil {
			lastErr = err
			continue
		}
		lastExec = result
		latencies = append(latencies, result.Latency)
	}

	if lastExec == nil {
		return execResult{err: lastErr}
	}

	return execResult{
		rankedIDs:    lastExec.RankedDocIDs,
		totalMatches: lastExec.TotalMatches,
		latencyStats: ComputeLatencyStats(latencies),
	}
}
