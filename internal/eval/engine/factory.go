package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/rankeval/rankeval/internal/eval/plan"
)

// CreateFromPlan builds an executor per configured engine. The returned
// cleanup closes every executor that was created, including on partial
// failure.
func CreateFromPlan(ctx context.Context, engines map[string]plan.Engine) (map[string]Executor, func(), error) {
	executors := make(map[string]Executor, len(engines))

	cleanup := func() {
		for _, exec := range executors {
			_ = exec.Close()
		}
	}

	for name, eng := range engines {
		switch eng.Type {
		case "postgres":
			exec, err := NewPgExecutor(ctx, name, eng.Connection)
			if err != nil {
				cleanup()
				return nil, nil, fmt.Errorf("create pg executor for %q: %w", name, err)
			}
			executors[name] = exec

		case "elasticsearch":
			index := eng.Index
			if index == "" {
				cleanup()
				return nil, nil, fmt.Errorf("elasticsearch engine %q has no index", name)
			}
			addresses := strings.Split(eng.Connection, ",")
			for i := range addresses {
				addresses[i] = strings.TrimSpace(addresses[i])
			}
			exec, err := NewEsExecutor(name, addresses, index)
			if err != nil {
				cleanup()
				return nil, nil, fmt.Errorf("create es executor for %q: %w", name, err)
			}
			executors[name] = exec

		case "api":
			executors[name] = NewAPIExecutor(name, eng.Connection)

		default:
			cleanup()
			return nil, nil, fmt.Errorf("unsupported engine type %q for %q", eng.Type, name)
		}
	}

	return executors, cleanup, nil
}
