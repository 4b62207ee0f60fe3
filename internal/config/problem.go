package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"ratiocycle/graphx"
)

// ProblemFile is the on-disk shape of a graph-problem file: a flat edge
// list, each edge carrying cost/time attributes by stable key name.
// Missing attributes default to DefaultCost/DefaultTime via
// graphx.SetDefault once loaded.
type ProblemFile struct {
	DefaultCost float64       `yaml:"default_cost"`
	DefaultTime float64       `yaml:"default_time"`
	Edges       []ProblemEdge `yaml:"edges"`
}

// ProblemEdge is one edge entry in a ProblemFile.
type ProblemEdge struct {
	From string   `yaml:"from"`
	To   string   `yaml:"to"`
	Cost *float64 `yaml:"cost"`
	Time *float64 `yaml:"time"`
}

// LoadProblem reads a ProblemFile and builds the graphx.Graph it
// describes, filling in any attribute an edge omits with the file's
// stated defaults.
func LoadProblem(path string) (*graphx.Graph[string], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading problem file: %w", err)
	}

	var pf ProblemFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parsing problem file: %w", err)
	}
	if len(pf.Edges) == 0 {
		return nil, fmt.Errorf("problem file %s declares no edges", path)
	}

	g := graphx.New[string]()
	for _, e := range pf.Edges {
		if e.From == "" || e.To == "" {
			return nil, fmt.Errorf("problem file %s: edge missing from/to", path)
		}
		attrs := graphx.Attrs{}
		if e.Cost != nil {
			attrs["cost"] = *e.Cost
		}
		if e.Time != nil {
			attrs["time"] = *e.Time
		}
		g.AddEdge(e.From, e.To, attrs)
	}

	graphx.SetDefault[string](g, "cost", pf.DefaultCost)
	graphx.SetDefault[string](g, "time", pf.DefaultTime)

	return g, nil
}
