package judgment

import (
	"github.com/google/uuid"

	"github.com/rankeval/rankeval/internal/eval/suite"
)

// MergeIntoSuite copies positive labels from a judgment file into the
// matching suite queries. Unjudged and negative documents are dropped;
// queries without an entry keep their existing judgments.
func MergeIntoSuite(jf *JudgmentFile, s *suite.TestSuite) *suite.TestSuite {
	judgeMap := make(map[string][]JudgedDoc, len(jf.Queries))
	for _, entry := range jf.Queries {
		judgeMap[entry.QueryID] = entry.Docs
	}

	merged := *s
	merged.Queries = make([]suite.Query, len(s.Queries))
	copy(merged.Queries, s.Queries)

	for i, q := range merged.Queries {
		docs, ok := judgeMap[q.ID]
		if !ok {
			continue
		}
		var relevant []uuid.UUID
		for _, d := range docs {
			if d.Label == LabelPositive {
				relevant = append(relevant, d.DocID)
			}
		}
		merged.Queries[i].RelevantDocs = relevant
	}

	return &merged
}
