package report

import (
	"time"

	"github.com/rankeval/rankeval/internal/eval/runner"
)

func Generate(er *runner.EvalResult) *Report {
	r := &Report{
		Meta: Meta{
			Timestamp:   time.Now().UTC(),
			Environment: NewEnvironmentInfo(),
		},
		Config: ReportConfig{
			Depth: er.Config.Depth,
			Runs:  er.Config.Runs,
		},
	}

	for _, jr := range er.Jobs {
		r.Jobs = append(r.Jobs, generateJob(jr))
	}

	return r
}

func generateJob(jr *runner.JobResult) JobReport {
	job := JobReport{JobName: jr.JobName}

	for _, qID := range jr.QueryOrder {
		engineResults := jr.Results[qID]
		for _, engName := range jr.EngineNames {
			qr, ok := engineResults[engName]
			if !ok {
				continue
			}
			entry := Entry{
				QueryID:       qr.QueryID,
				EngineName:    qr.EngineName,
				AP:            qr.AP,
				Scored:        qr.Scored,
				RelevantFound: qr.RelevantFound,
				TotalRelevant: qr.TotalRelevant,
				TotalMatches:  qr.TotalMatches,
				Latency:       fromRunnerLatencyStats(qr.Latency),
			}
			if qr.Error != nil {
				entry.Error = qr.Error.Error()
			}
			job.PerQuery = append(job.PerQuery, entry)
		}
	}

	job.Engines = summarize(jr)

	return job
}

func summarize(jr *runner.JobResult) []EngineSummary {
	summaries := make([]EngineSummary, 0, len(jr.EngineNames))

	for _, engName := range jr.EngineNames {
		sum := EngineSummary{EngineName: engName}
		var latencies []runner.LatencyStats

		for _, qID := range jr.QueryOrder {
			qr, ok := jr.Results[qID][engName]
			if !ok {
				continue
			}
			sum.QueryCount++

			if qr.Error != nil {
				sum.ErrorCount++
				continue
			}
			if qr.Scored {
				sum.ScoredCount++
			}
			latencies = append(latencies, qr.Latency)
		}

		sum.Latency = fromRunnerLatencyStats(runner.AggregateLatencyStats(latencies))
		summaries = append(summaries, sum)
	}

	return summaries
}
