package suite

import (
	"github.com/google/uuid"
)

// TestSuite is a set of queries with binary relevance judgments, loaded from
// YAML. Each query carries one raw query body per engine, optionally rendered
// from a shared template.
type TestSuite struct {
	Name        string           `yaml:"name"`
	Description string           `yaml:"description"`
	Version     string           `yaml:"version"`
	Templates   []*QueryTemplate `yaml:"templates,omitempty"`
	Queries     []Query          `yaml:"queries"`
}

type Query struct {
	ID           string                 `yaml:"id"`
	Description  string                 `yaml:"description,omitempty"`
	Engines      map[string]EngineQuery `yaml:"engines"`
	RelevantDocs []uuid.UUID            `yaml:"relevant_docs,omitempty"`
}

// EngineQuery is either a literal query body or a template reference with
// parameters. Template takes precedence when both are set.
type EngineQuery struct {
	Query    string         `yaml:"query,omitempty"`
	Template string         `yaml:"template,omitempty"`
	Params   TemplateParams `yaml:"params,omitempty"`
}

// RelevantSet returns the judged-relevant doc IDs as a lookup set.
func (q *Query) RelevantSet() map[uuid.UUID]bool {
	s := make(map[uuid.UUID]bool, len(q.RelevantDocs))
	for _, id := range q.RelevantDocs {
		s[id] = true
	}
	return s
}

// TotalRelevant is the number of distinct relevant documents known for the
// query, independent of what any engine retrieves.
func (q *Query) TotalRelevant() int {
	return len(q.RelevantSet())
}

// ResolveEngineQuery renders the query body for the named engine. The second
// return value reports whether the query targets that engine at all.
func (q *Query) ResolveEngineQuery(engineName string, registry *TemplateRegistry) (string, bool, error) {
	eq, ok := q.Engines[engineName]
	if !ok {
		return "", false, nil
	}
	if eq.Template != "" {
		rendered, err := registry.Render(eq.Template, eq.Params)
		if err != nil {
			return "", true, err
		}
		return rendered, true, nil
	}
	return eq.Query, true, nil
}
