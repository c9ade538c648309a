package plan

// EvalPlan describes a full evaluation run: which suites to execute against
// which engines, and how.
type EvalPlan struct {
	Jobs    []Job             `yaml:"jobs"`
	Engines map[string]Engine `yaml:"engines"`
	Depth   int               `yaml:"depth"`
	Runs    RunsConfig        `yaml:"runs"`
}

type Job struct {
	Name    string   `yaml:"name"`
	Suite   string   `yaml:"suite"`
	Engines []string `yaml:"engines"`
}

type Engine struct {
	Type       string `yaml:"type"`
	Connection string `yaml:"connection"`
	Index      string `yaml:"index,omitempty"`
}

type RunsConfig struct {
	Warmup     int `yaml:"warmup"`
	Iterations int `yaml:"iterations"`
}
