package runner

const (
	DefaultDepth      = 100
	DefaultWarmupRuns = 0
	DefaultRuns       = 1
)

type Config struct {
	// Depth caps how many ranked results feed pooling and scoring.
	Depth      int
	WarmupRuns int
	Runs       int
}

func DefaultConfig() Config {
	return Config{
		Depth:      DefaultDepth,
		WarmupRuns: DefaultWarmupRuns,
		Runs:       DefaultRuns,
	}
}
