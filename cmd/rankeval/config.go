package main

import (
	"flag"
)

type cliConfig struct {
	PlanPath    string
	SuitePath   string
	PgConnStr   string
	EsAddresses string
	EsIndex     string
	APIURL      string
	Depth       int
	Warmup      int
	Runs        int
	Output      string
	Mode        string
	PoolPath    string
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.PlanPath, "plan", "", "Path to eval plan YAML (multi-job mode)")
	flag.StringVar(&cfg.SuitePath, "suite", "configs/suites/quality_v1.yaml", "Path to query suite YAML (quick single-job mode)")
	flag.StringVar(&cfg.PgConnStr, "pg", "", "PostgreSQL connection string")
	flag.StringVar(&cfg.EsAddresses, "es-addresses", "", "Elasticsearch addresses, comma-separated")
	flag.StringVar(&cfg.EsIndex, "es-index", "docs", "Elasticsearch index name")
	flag.StringVar(&cfg.APIURL, "api-url", "", "Base URL of a deployed search API to evaluate")
	flag.IntVar(&cfg.Depth, "depth", 100, "Maximum number of ranked results used for pooling and scoring")
	flag.IntVar(&cfg.Warmup, "warmup", 0, "Number of warmup runs before measurement")
	flag.IntVar(&cfg.Runs, "runs", 1, "Number of measured iterations per query")
	flag.StringVar(&cfg.Output, "output", "", "Output path for results (JSON report or pool YAML)")
	flag.StringVar(&cfg.Mode, "mode", "eval", "Run mode: eval, pool, or judge")
	flag.StringVar(&cfg.PoolPath, "pool", "", "Path to pool file (for judge mode)")

	flag.Parse()
	return cfg
}
