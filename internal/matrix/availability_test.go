package matrix

import (
	"testing"

	"github.com/andywolf/skillmatrix/internal/catalog"
	"github.com/google/go-cmp/cmp"
)

func TestGraph_Availability(t *testing.T) {
	g := newTestGraph(t)

	tests := []struct {
		name      string
		skill     string
		selection []string
		opts      Options
		want      Availability
	}{
		{
			name:  "nothing selected",
			skill: "react",
			want:  Availability{Selectable: true},
		},
		{
			name:      "matrix conflict",
			skill:     "vue",
			selection: []string{"react"},
			want:      Availability{Disabled: true, DisabledReason: "pick one framework"},
		},
		{
			name:      "conflict declared by the other side",
			skill:     "react",
			selection: []string{idAngular},
			want:      Availability{Disabled: true, DisabledReason: reasonDeclared},
		},
		{
			name:  "unmet inline requirement",
			skill: "zustand",
			want:  Availability{Disabled: true, DisabledReason: "requires React"},
		},
		{
			name:  "unmet matrix requirement",
			skill: "redux",
			want:  Availability{Disabled: true, DisabledReason: "redux needs react"},
		},
		{
			name:      "requirement on a missing skill is never met",
			skill:     "jquery",
			selection: []string{"react", "ghost"},
			want:      Availability{Disabled: true, DisabledReason: "needs a missing skill"},
		},
		{
			name:      "recommended once requirement is met",
			skill:     "zustand",
			selection: []string{"react"},
			want:      Availability{Selectable: true, Recommended: true, RecommendedReason: "react pairing"},
		},
		{
			name:      "discouraged outranks recommended",
			skill:     "zustand",
			selection: []string{"react", "redux"},
			want:      Availability{Selectable: true, Discouraged: true, DiscouragedReason: "one store is enough"},
		},
		{
			name:      "compatible with counts as recommendation",
			skill:     "react",
			selection: []string{"tailwind"},
			want:      Availability{Selectable: true, Recommended: true, RecommendedReason: reasonCompatible},
		},
		{
			name:      "selection by canonical id",
			skill:     idVue,
			selection: []string{idReact},
			want:      Availability{Disabled: true, DisabledReason: "pick one framework"},
		},
		{
			name:      "expert mode skips conflicts",
			skill:     "vue",
			selection: []string{"react"},
			opts:      Options{ExpertMode: true},
			want:      Availability{Selectable: true},
		},
		{
			name:  "expert mode skips requirements",
			skill: "zustand",
			opts:  Options{ExpertMode: true},
			want:  Availability{Selectable: true},
		},
		{
			name:      "expert mode keeps discouragement",
			skill:     "redux",
			selection: []string{"zustand"},
			opts:      Options{ExpertMode: true},
			want:      Availability{Selectable: true, Discouraged: true, DiscouragedReason: "one store is enough"},
		},
		{
			name:  "unknown skill",
			skill: "svelte",
			want:  Availability{Disabled: true, DisabledReason: `unknown skill "svelte"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Availability(tt.skill, tt.selection, tt.opts)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Availability(%q, %v) mismatch (-want +got):\n%s", tt.skill, tt.selection, diff)
			}
		})
	}
}

func TestGraph_AvailabilityDisabledDominates(t *testing.T) {
	m := newTestMatrix()
	m.Relationships.Recommends = append(m.Relationships.Recommends, catalog.RecommendRule{
		When:    "tailwind",
		Suggest: []string{"vue"},
		Reason:  "tailwind likes vue",
	})
	g, err := Build(newTestSkills(), m)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	got := g.Availability("vue", []string{"tailwind", "react"}, Options{})
	if !got.Disabled || got.Recommended {
		t.Errorf("Availability = %+v, want disabled and not recommended", got)
	}
	if got.Selectable {
		t.Error("disabled skill should not be selectable")
	}
}

func TestGraph_AvailabilityNeedsAny(t *testing.T) {
	m := newTestMatrix()
	m.Relationships.Requires = append(m.Relationships.Requires, catalog.RequireRule{
		Skill:    "tailwind",
		Needs:    []string{"react", "vue"},
		NeedsAny: true,
	})
	g, err := Build(newTestSkills(), m)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	tests := []struct {
		selection    []string
		wantDisabled bool
		wantReason   string
	}{
		{nil, true, "requires one of: React, Vue"},
		{[]string{"react"}, false, ""},
		{[]string{"vue"}, false, ""},
	}

	for _, tt := range tests {
		got := g.Availability("tailwind", tt.selection, Options{})
		if got.Disabled != tt.wantDisabled || got.DisabledReason != tt.wantReason {
			t.Errorf("Availability(tailwind, %v) = %+v, want disabled=%v reason=%q",
				tt.selection, got, tt.wantDisabled, tt.wantReason)
		}
	}
}

func TestGraph_AvailabilityEndToEnd(t *testing.T) {
	skills := []catalog.Skill{
		{ID: "web/framework/react", Alias: "react", Category: "framework"},
		{ID: "web/framework/vue", Alias: "vue", Category: "framework"},
	}
	m := &catalog.Matrix{
		Version:    "1.0.0",
		Categories: map[string]catalog.Category{"framework": {Name: "Framework", Exclusive: true}},
		Relationships: catalog.Relationships{
			Conflicts: []catalog.ConflictRule{{Skills: []string{"react", "vue"}, Reason: "pick one framework"}},
		},
	}
	g, err := Build(skills, m)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	got := g.Availability("vue", []string{"react"}, Options{})
	want := Availability{Disabled: true, DisabledReason: "pick one framework"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Availability mismatch (-want +got):\n%s", diff)
	}
}

func TestGraph_IsCategoryFullyDisabled(t *testing.T) {
	g := newTestGraph(t)

	tests := []struct {
		name       string
		category   string
		selection  []string
		opts       Options
		want       bool
		wantReason string
	}{
		{"all need react", "state", nil, Options{}, true, "redux needs react"},
		{"react selected", "state", []string{"react"}, Options{}, false, ""},
		{"expert mode", "state", nil, Options{ExpertMode: true}, false, ""},
		{"missing requirement", "legacy", nil, Options{}, true, "needs a missing skill"},
		{"empty category", "frontend", nil, Options{}, false, ""},
		{"unknown category", "nope", nil, Options{}, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, reason := g.IsCategoryFullyDisabled(tt.category, tt.selection, tt.opts)
			if got != tt.want || reason != tt.wantReason {
				t.Errorf("IsCategoryFullyDisabled(%q) = (%v, %q), want (%v, %q)",
					tt.category, got, reason, tt.want, tt.wantReason)
			}
		})
	}
}

func TestGraph_AvailableInCategory(t *testing.T) {
	g := newTestGraph(t)

	options := g.AvailableInCategory("framework", []string{"react"}, Options{})
	if len(options) != 3 {
		t.Fatalf("expected 3 options, got %d", len(options))
	}

	type row struct {
		ID       string
		Selected bool
		Disabled bool
	}
	var got []row
	for _, o := range options {
		got = append(got, row{ID: o.Skill.ID, Selected: o.Selected, Disabled: o.Disabled})
	}
	want := []row{
		{ID: idAngular, Selected: false, Disabled: true},
		{ID: idReact, Selected: true, Disabled: false},
		{ID: idVue, Selected: false, Disabled: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AvailableInCategory mismatch (-want +got):\n%s", diff)
	}

	if got := g.AvailableInCategory("nope", nil, Options{}); len(got) != 0 {
		t.Errorf("unknown category should list nothing, got %d", len(got))
	}
}
