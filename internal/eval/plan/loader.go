package plan

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultDepth = 100

func LoadFromFile(path string) (*EvalPlan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*EvalPlan, error) {
	var p EvalPlan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse plan YAML: %w", err)
	}
	if err := validate(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

var validEngineTypes = map[string]bool{
	"postgres":      true,
	"elasticsearch": true,
	"api":           true,
}

func validate(p *EvalPlan) error {
	if len(p.Jobs) == 0 {
		return fmt.Errorf("plan has no jobs")
	}
	if len(p.Engines) == 0 {
		return fmt.Errorf("plan has no engines")
	}
	for i, j := range p.Jobs {
		if j.Name == "" {
			return fmt.Errorf("job at index %d has no name", i)
		}
		if j.Suite == "" {
			return fmt.Errorf("job %q has no suite", j.Name)
		}
		if len(j.Engines) == 0 {
			return fmt.Errorf("job %q has no engines", j.Name)
		}
		for _, engRef := range j.Engines {
			if _, ok := p.Engines[engRef]; !ok {
				return fmt.Errorf("job %q references unknown engine %q", j.Name, engRef)
			}
		}
	}
	for name, eng := range p.Engines {
		if eng.Type == "" {
			return fmt.Errorf("engine %q has no type", name)
		}
		if !validEngineTypes[eng.Type] {
			return fmt.Errorf("engine %q has invalid type %q", name, eng.Type)
		}
		if eng.Connection == "" {
			return fmt.Errorf("engine %q has no connection", name)
		}
	}
	if p.Depth <= 0 {
		p.Depth = DefaultDepth
	}
	if p.Runs.Iterations <= 0 {
		p.Runs.Iterations = 1
	}
	return nil
}
