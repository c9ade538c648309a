package report

import (
	"runtime"
	"time"

	"github.com/rankeval/rankeval/internal/eval/runner"
)

type Report struct {
	Meta   Meta         `json:"meta"`
	Jobs   []JobReport  `json:"jobs"`
	Config ReportConfig `json:"config"`
}

type Meta struct {
	Timestamp   time.Time       `json:"timestamp"`
	Environment EnvironmentInfo `json:"environment"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	NumCPU    int    `json:"num_cpu"`
}

func NewEnvironmentInfo() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
	}
}

type JobReport struct {
	JobName  string          `json:"job_name"`
	Engines  []EngineSummary `json:"engines"`
	PerQuery []Entry         `json:"per_query"`
}

type ReportConfig struct {
	Depth int `json:"depth"`
	Runs  int `json:"runs"`
}

// Entry holds the outcome for one (query, engine) pair. AP values are
// reported per query only; averaging them across queries is left to callers
// with their own aggregation policy.
type Entry struct {
	QueryID       string       `json:"query_id"`
	EngineName    string       `json:"engine_name"`
	AP            float64      `json:"ap"`
	Scored        bool         `json:"scored"`
	RelevantFound int          `json:"relevant_found"`
	TotalRelevant int          `json:"total_relevant"`
	TotalMatches  int64        `json:"total_matches"`
	Latency       LatencyStats `json:"latency"`
	Error         string       `json:"error,omitempty"`
}

type EngineSummary struct {
	EngineName  string       `json:"engine_name"`
	QueryCount  int          `json:"query_count"`
	ScoredCount int          `json:"scored_count"`
	ErrorCount  int          `json:"error_count"`
	Latency     LatencyStats `json:"latency"`
}

type LatencyStats struct {
	Min         time.Duration         `json:"min"`
	Max         time.Duration         `json:"max"`
	Mean        time.Duration         `json:"mean"`
	Median      time.Duration         `json:"median"`
	Stddev      time.Duration         `json:"stddev"`
	Percentiles map[int]time.Duration `json:"percentiles"`
	SampleCount int                   `json:"sample_count"`
}

func fromRunnerLatencyStats(s runner.LatencyStats) LatencyStats {
	return LatencyStats{
		Min:         s.Min,
		Max:         s.Max,
		Mean:        s.Mean,
		Median:      s.Median,
		Stddev:      s.Stddev,
		Percentiles: s.Percentiles,
		SampleCount: s.SampleCount,
	}
}

func (s LatencyStats) P50() time.Duration { return s.Percentiles[50] }
func (s LatencyStats) P95() time.Duration { return s.Percentiles[95] }
func (s LatencyStats) P99() time.Duration { return s.Percentiles[99] }
