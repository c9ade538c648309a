package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/rankeval/rankeval/internal/eval/engine"
	"github.com/rankeval/rankeval/internal/eval/judgment"
	"github.com/rankeval/rankeval/internal/eval/plan"
	"github.com/rankeval/rankeval/internal/eval/pool"
	"github.com/rankeval/rankeval/internal/eval/report"
	"github.com/rankeval/rankeval/internal/eval/runner"
)

func main() {
	cfg := parseFlags()
	ctx := context.Background()

	switch cfg.Mode {
	case "eval":
		runEval(ctx, cfg)
	case "pool":
		runPool(ctx, cfg)
	case "judge":
		runJudge(cfg)
	default:
		slog.Error("Unknown mode", "mode", cfg.Mode)
		os.Exit(1)
	}
}

func runEval(ctx context.Context, cfg cliConfig) {
	runCfg := runner.Config{
		Depth:      cfg.Depth,
		WarmupRuns: cfg.Warmup,
		Runs:       max(cfg.Runs, 1),
	}

	p := loadOrBuildPlan(cfg, &runCfg)

	executors, cleanup, err := engine.CreateFromPlan(ctx, p.Engines)
	if err != nil {
		slog.Error("Failed to create executors", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	r := runner.New(runCfg)
	result, err := r.RunAll(ctx, p, executors)
	if err != nil {
		slog.Error("Evaluation failed", "error", err)
		os.Exit(1)
	}

	outputReport(result, cfg.Output)
}

func runPool(ctx context.Context, cfg cliConfig) {
	if cfg.Output == "" {
		slog.Error("Pool mode requires --output")
		os.Exit(1)
	}

	runCfg := runner.Config{
		Depth: cfg.Depth,
		Runs:  1,
	}

	p := loadOrBuildPlan(cfg, &runCfg)

	executors, cleanup, err := engine.CreateFromPlan(ctx, p.Engines)
	if err != nil {
		slog.Error("Failed to create executors", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	r := runner.New(runCfg)
	result, err := r.RunAll(ctx, p, executors)
	if err != nil {
		slog.Error("Pool run failed", "error", err)
		os.Exit(1)
	}

	pf := buildPoolFile(result, runCfg.Depth)
	if err := pool.WritePoolFile(pf, cfg.Output); err != nil {
		slog.Error("Failed to write pool file", "error", err)
		os.Exit(1)
	}
	slog.Info("Pool file written", "path", cfg.Output)
}

func runJudge(cfg cliConfig) {
	if cfg.PoolPath == "" {
		slog.Error("Judge mode requires --pool")
		os.Exit(1)
	}
	if cfg.Output == "" {
		slog.Error("Judge mode requires --output")
		os.Exit(1)
	}

	pf, err := pool.ReadPoolFile(cfg.PoolPath)
	if err != nil {
		slog.Error("Failed to read pool file", "error", err)
		os.Exit(1)
	}

	if err := judgment.ExportForAnnotation(pf, cfg.Output); err != nil {
		slog.Error("Failed to export annotation template", "error", err)
		os.Exit(1)
	}
	slog.Info("Annotation template written", "path", cfg.Output)
}

func loadOrBuildPlan(cfg cliConfig, runCfg *runner.Config) *plan.EvalPlan {
	if cfg.PlanPath != "" {
		p, err := plan.LoadFromFile(cfg.PlanPath)
		if err != nil {
			slog.Error("Failed to load plan", "path", cfg.PlanPath, "error", err)
			os.Exit(1)
		}
		if p.Runs.Warmup > 0 && cfg.Warmup == 0 {
			runCfg.WarmupRuns = p.Runs.Warmup
		}
		if p.Runs.Iterations > 0 && cfg.Runs <= 1 {
			runCfg.Runs = p.Runs.Iterations
		}
		if p.Depth > 0 {
			runCfg.Depth = p.Depth
		}
		return p
	}
	return buildQuickPlan(cfg)
}

func buildQuickPlan(cfg cliConfig) *plan.EvalPlan {
	if cfg.PgConnStr == "" && cfg.EsAddresses == "" && cfg.APIURL == "" {
		slog.Error("Quick mode requires --pg, --es-addresses, or --api-url")
		os.Exit(1)
	}

	engines := make(map[string]plan.Engine)
	var engineNames []string

	if cfg.PgConnStr != "" {
		engines["pg-native"] = plan.Engine{Type: "postgres", Connection: cfg.PgConnStr}
		engineNames = append(engineNames, "pg-native")
	}
	if cfg.EsAddresses != "" {
		engines["elasticsearch"] = plan.Engine{Type: "elasticsearch", Connection: cfg.EsAddresses, Index: cfg.EsIndex}
		engineNames = append(engineNames, "elasticsearch")
	}
	if cfg.APIURL != "" {
		engines["api"] = plan.Engine{Type: "api", Connection: cfg.APIURL}
		engineNames = append(engineNames, "api")
	}

	return &plan.EvalPlan{
		Engines: engines,
		Depth:   cfg.Depth,
		Jobs: []plan.Job{
			{
				Name:    "quick",
				Suite:   cfg.SuitePath,
				Engines: engineNames,
			},
		},
	}
}

func buildPoolFile(result *runner.EvalResult, depth int) *pool.PoolFile {
	pf := &pool.PoolFile{}
	for _, jr := range result.Jobs {
		pf.SuiteName = jr.JobName
		for _, qID := range jr.QueryOrder {
			engResults := jr.Results[qID]
			executions := make(map[string]*engine.Execution)
			for engName, qr := range engResults {
				if qr.Error != nil {
					continue
				}
				executions[engName] = &engine.Execution{
					RankedDocIDs: qr.RankedDocIDs,
					TotalMatches: qr.TotalMatches,
				}
			}
			docs := pool.PoolResults(executions, depth)
			pf.Queries = append(pf.Queries, pool.PoolEntry{
				QueryID: qID,
				Docs:    docs,
			})
		}
	}
	return pf
}

func outputReport(result *runner.EvalResult, outputPath string) {
	rpt := report.Generate(result)
	report.WriteTable(rpt, os.Stdout)

	if outputPath != "" {
		if err := report.WriteJSON(rpt, outputPath); err != nil {
			slog.Error("Failed to write JSON report", "error", err)
			os.Exit(1)
		}
		slog.Info("Report written", "path", outputPath)
	}
}
