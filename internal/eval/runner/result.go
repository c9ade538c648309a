package runner

import (
	"github.com/google/uuid"
)

type QueryResult struct {
	QueryID    string
	JobName    string
	EngineName string

	// AP is only meaningful when Scored is true, i.e. the query carries
	// relevance judgments and the execution succeeded.
	AP            float64
	Scored        bool
	RelevantFound int
	TotalRelevant int

	RankedDocIDs []uuid.UUID
	TotalMatches int64
	Latency      LatencyStats
	Error        error
}

type JobResult struct {
	JobName     string
	Results     map[string]map[string]QueryResult // [queryID][engineName]
	QueryOrder  []string
	EngineNames []string
}

type EvalResult struct {
	Jobs   []*JobResult
	Config Config
}

func (er *EvalResult) AllEngineNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, jr := range er.Jobs {
		for _, name := range jr.EngineNames {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}
