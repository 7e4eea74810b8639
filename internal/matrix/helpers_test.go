package matrix

import (
	"testing"

	"github.com/andywolf/skillmatrix/internal/catalog"
)

const (
	idAngular  = "web/framework/angular"
	idLegacy   = "web/legacy/jquery"
	idReact    = "web/framework/react"
	idRedux    = "web/state/redux"
	idTailwind = "web/styling/tailwind"
	idVue      = "web/framework/vue"
	idZustand  = "web/state/zustand"
)

func newTestSkills() []catalog.Skill {
	return []catalog.Skill{
		{ID: idReact, Name: "React", Category: "framework", Directory: "framework/react"},
		{ID: idVue, Name: "Vue", Category: "framework", Directory: "framework/vue"},
		{ID: idAngular, Name: "Angular", Category: "framework", ConflictsWith: []string{"react"}},
		{ID: idZustand, Name: "Zustand", Category: "state", Requires: []string{"react"}},
		{ID: idRedux, Name: "Redux", Category: "state"},
		{ID: idTailwind, Name: "Tailwind", Category: "styling", CompatibleWith: []string{"react"}},
		{ID: idLegacy, Name: "jQuery", Category: "legacy"},
	}
}

func newTestMatrix() *catalog.Matrix {
	return &catalog.Matrix{
		Version: "1.0.0",
		Categories: map[string]catalog.Category{
			"frontend":  {Name: "Frontend", Order: 1},
			"framework": {Name: "Framework", Parent: "frontend", Exclusive: true, Required: true, Order: 1},
			"state":     {Name: "State", Parent: "frontend", Exclusive: true, Order: 2},
			"styling":   {Name: "Styling", Parent: "frontend", Order: 3},
			"legacy":    {Name: "Legacy", Order: 2},
		},
		Relationships: catalog.Relationships{
			Conflicts: []catalog.ConflictRule{
				{Skills: []string{"react", "vue"}, Reason: "pick one framework"},
				{Skills: []string{"vue", "react"}, Reason: "authored later"},
			},
			Discourages: []catalog.DiscourageRule{
				{Skills: []string{"zustand", "redux"}, Reason: "one store is enough"},
			},
			Recommends: []catalog.RecommendRule{
				{When: "react", Suggest: []string{"zustand", "tailwind", "ghost"}, Reason: "react pairing"},
				{When: "react", Suggest: []string{"zustand"}, Reason: "duplicate suggestion"},
			},
			Requires: []catalog.RequireRule{
				{Skill: "redux", Needs: []string{"react"}, Reason: "redux needs react"},
				{Skill: "jquery", Needs: []string{"ghost"}, Reason: "needs a missing skill"},
			},
			Alternatives: []catalog.AlternativeGroup{
				{Purpose: "client state", Skills: []string{"zustand", "redux"}},
			},
		},
		SkillAliases: map[string]string{
			"react":    idReact,
			"vue":      idVue,
			"zustand":  idZustand,
			"redux":    idRedux,
			"tailwind": idTailwind,
			"jquery":   idLegacy,
		},
	}
}

func newTestGraph(t *testing.T) *Graph {
	t.Helper()
	g, err := Build(newTestSkills(), newTestMatrix())
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	return g
}

func mustSkill(t *testing.T, g *Graph, ref string) *ResolvedSkill {
	t.Helper()
	s, ok := g.Skill(ref)
	if !ok {
		t.Fatalf("skill %q not found", ref)
	}
	return s
}

func relationIDs(rels []Relation) []string {
	ids := make([]string, 0, len(rels))
	for _, r := range rels {
		ids = append(ids, r.SkillID)
	}
	return ids
}
