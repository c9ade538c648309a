package judgment

import (
	"github.com/google/uuid"
)

// Relevance labels are binary. The sentinel only marks documents an annotator
// has not looked at yet; it never reaches a scored suite.
const (
	LabelUnjudged = -1
	LabelNegative = 0
	LabelPositive = 1
)

type JudgedDoc struct {
	DocID uuid.UUID `yaml:"doc_id"`
	Label int       `yaml:"label"`
}

type JudgmentFile struct {
	Suite   string          `yaml:"suite"`
	Queries []JudgmentEntry `yaml:"queries"`
}

type JudgmentEntry struct {
	QueryID string      `yaml:"query_id"`
	Docs    []JudgedDoc `yaml:"docs"`
}
