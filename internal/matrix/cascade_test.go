package matrix

import (
	"testing"

	"github.com/andywolf/skillmatrix/internal/catalog"
	"github.com/google/go-cmp/cmp"
)

func newChainGraph(t *testing.T, requires []catalog.RequireRule) *Graph {
	t.Helper()
	skills := []catalog.Skill{
		{ID: "x/a", Alias: "A", Category: "c"},
		{ID: "x/b", Alias: "B", Category: "c"},
		{ID: "x/c", Alias: "C", Category: "c"},
		{ID: "x/d", Alias: "D", Category: "c"},
	}
	m := &catalog.Matrix{
		Version:       "1.0.0",
		Categories:    map[string]catalog.Category{"c": {Name: "C"}},
		Relationships: catalog.Relationships{Requires: requires},
	}
	g, err := Build(skills, m)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	return g
}

func TestGraph_DependentsOf(t *testing.T) {
	chain := []catalog.RequireRule{
		{Skill: "B", Needs: []string{"A"}},
		{Skill: "C", Needs: []string{"B"}},
	}

	tests := []struct {
		name      string
		requires  []catalog.RequireRule
		target    string
		selection []string
		want      []string
	}{
		{
			name:      "transitive chain",
			requires:  chain,
			target:    "A",
			selection: []string{"A", "B", "C"},
			want:      []string{"x/b", "x/c"},
		},
		{
			name:      "middle link not selected",
			requires:  chain,
			target:    "A",
			selection: []string{"A", "C"},
			want:      []string{},
		},
		{
			name:      "leaf has no dependents",
			requires:  chain,
			target:    "C",
			selection: []string{"A", "B", "C"},
			want:      []string{},
		},
		{
			name: "any-of group still counts",
			requires: []catalog.RequireRule{
				{Skill: "B", Needs: []string{"A", "D"}, NeedsAny: true},
			},
			target:    "x/a",
			selection: []string{"A", "B", "D"},
			want:      []string{"x/b"},
		},
		{
			name: "cycle terminates",
			requires: []catalog.RequireRule{
				{Skill: "A", Needs: []string{"C"}},
				{Skill: "B", Needs: []string{"A"}},
				{Skill: "C", Needs: []string{"B"}},
			},
			target:    "A",
			selection: []string{"A", "B", "C"},
			want:      []string{"x/b", "x/c"},
		},
		{
			name: "fan out in selection order",
			requires: []catalog.RequireRule{
				{Skill: "B", Needs: []string{"A"}},
				{Skill: "C", Needs: []string{"A"}},
				{Skill: "D", Needs: []string{"C"}},
			},
			target:    "A",
			selection: []string{"D", "C", "B", "A"},
			want:      []string{"x/c", "x/b", "x/d"},
		},
		{
			name:      "unknown target",
			requires:  chain,
			target:    "nope",
			selection: []string{"A", "B"},
			want:      []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newChainGraph(t, tt.requires)
			got := g.DependentsOf(tt.target, tt.selection)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("DependentsOf(%q, %v) mismatch (-want +got):\n%s", tt.target, tt.selection, diff)
			}
		})
	}
}

func TestGraph_DependentsOfDoesNotModifySelection(t *testing.T) {
	g := newChainGraph(t, []catalog.RequireRule{{Skill: "B", Needs: []string{"A"}}})

	selection := []string{"A", "B"}
	_ = g.DependentsOf("A", selection)
	if diff := cmp.Diff([]string{"A", "B"}, selection); diff != "" {
		t.Errorf("selection changed (-want +got):\n%s", diff)
	}
}
