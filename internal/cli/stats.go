package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/geoknoesis/rdf-commons/rdf"
)

// Stats summarizes a dataset.
type Stats struct {
	File         string `yaml:"file"`
	Backend      string `yaml:"backend"`
	Quads        int    `yaml:"quads"`
	NamedGraphs  int    `yaml:"named_graphs"`
	DefaultGraph int    `yaml:"default_graph"`
	UnionGraph   int    `yaml:"union_graph"`
	Predicate    string `yaml:"predicate,omitempty"`
	Matches      int    `yaml:"matches,omitempty"`
}

// collectStats walks ds once per figure. A zero predicate skips the
// predicate count.
func collectStats(ds rdf.Dataset, predicate rdf.IRI) (Stats, error) {
	var s Stats
	var err error
	s.Quads = ds.Size()
	if s.NamedGraphs, err = ds.GraphNames().Count(); err != nil {
		return s, fmt.Errorf("count graphs: %w", err)
	}
	s.DefaultGraph = ds.DefaultGraph().Size()
	s.UnionGraph = ds.UnionGraph().Size()
	if !predicate.IsZero() {
		s.Predicate = predicate.Value()
		if s.Matches, err = ds.Match(rdf.QuadPattern{P: predicate}).Count(); err != nil {
			return s, fmt.Errorf("count predicate: %w", err)
		}
	}
	return s, nil
}

var (
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	styleLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(16)
	styleValue = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
)

func writeStats(w io.Writer, s Stats, output string) error {
	if output == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	}

	fmt.Fprintln(w, styleTitle.Render(s.File))
	row := func(label string, value any) {
		fmt.Fprintln(w, styleLabel.Render(label)+styleValue.Render(fmt.Sprint(value)))
	}
	row("backend", s.Backend)
	row("quads", s.Quads)
	row("named graphs", s.NamedGraphs)
	row("default graph", s.DefaultGraph)
	row("union graph", s.UnionGraph)
	if s.Predicate != "" {
		row("predicate", fmt.Sprintf("%s %d", s.Predicate, s.Matches))
	}
	return nil
}
