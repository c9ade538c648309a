package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

func WriteTable(r *Report, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Ranking Quality Evaluation ===\n")

	for i := range r.Jobs {
		jr := &r.Jobs[i]
		fmt.Fprintf(tw, "\n--- Job: %s ---\n\n", jr.JobName)
		writeEngineTable(tw, jr)
		writePerQueryTable(tw, jr)
	}

	tw.Flush()
}

func writeEngineTable(tw *tabwriter.Writer, jr *JobReport) {
	fmt.Fprintf(tw, "Engines\n\n")

	header := []string{"Engine", "Queries", "Scored", "Errors", "Min", "p50", "p95", "p99", "Max", "Mean", "Samples"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	fmt.Fprintln(tw, separator(len(header)))

	for _, sum := range jr.Engines {
		s := sum.Latency
		row := []string{
			sum.EngineName,
			fmt.Sprintf("%d", sum.QueryCount),
			fmt.Sprintf("%d", sum.ScoredCount),
			fmt.Sprintf("%d", sum.ErrorCount),
			fmtDuration(s.Min),
			fmtDuration(s.P50()),
			fmtDuration(s.P95()),
			fmtDuration(s.P99()),
			fmtDuration(s.Max),
			fmtDuration(s.Mean),
			fmt.Sprintf("%d", s.SampleCount),
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintln(tw)
}

func writePerQueryTable(tw *tabwriter.Writer, jr *JobReport) {
	fmt.Fprintf(tw, "Per-Query Average Precision\n\n")

	header := []string{"Query", "Engine", "AP", "Found", "Hits", "p50", "p95", "Status"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	fmt.Fprintln(tw, separator(len(header)))

	for _, e := range jr.PerQuery {
		status := "OK"
		if e.Error != "" {
			status = "ERR"
		}
		row := []string{
			e.QueryID,
			e.EngineName,
			fmtAP(e),
			fmt.Sprintf("%d/%d", e.RelevantFound, e.TotalRelevant),
			fmt.Sprintf("%d", e.TotalMatches),
			fmtDuration(e.Latency.P50()),
			fmtDuration(e.Latency.P95()),
			status,
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintln(tw)
}

func separator(n int) string {
	sep := make([]string, n)
	for i := range sep {
		sep[i] = "---"
	}
	return strings.Join(sep, "\t")
}

func fmtAP(e Entry) string {
	if !e.Scored {
		return "N/A"
	}
	return fmt.Sprintf("%.4f", e.AP)
}

func fmtDuration(d time.Duration) string {
	if d == 0 {
		return "-"
	}
	if d < time.Millisecond {
		return fmt.Sprintf("%.1fµs", float64(d.Microseconds()))
	}
	if d < time.Second {
		return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
