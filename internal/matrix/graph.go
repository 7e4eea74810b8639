package matrix

import (
	"sort"

	"github.com/andywolf/skillmatrix/internal/catalog"
)

// Version returns the matrix version the graph was built from.
func (g *Graph) Version() string {
	return g.version
}

// Resolve returns the canonical ID for any accepted reference form.
func (g *Graph) Resolve(ref string) string {
	return g.resolver.Resolve(ref)
}

// Skill looks up a skill by any reference form.
func (g *Graph) Skill(ref string) (*ResolvedSkill, bool) {
	s, ok := g.skills[g.resolver.Resolve(ref)]
	return s, ok
}

// Skills returns every skill in ID order.
func (g *Graph) Skills() []*ResolvedSkill {
	out := make([]*ResolvedSkill, 0, len(g.ids))
	for _, id := range g.ids {
		out = append(out, g.skills[id])
	}
	return out
}

// SkillsInCategory returns the skills whose category is categoryID, in ID order.
func (g *Graph) SkillsInCategory(categoryID string) []*ResolvedSkill {
	var out []*ResolvedSkill
	for _, id := range g.ids {
		if s := g.skills[id]; s.Category == categoryID {
			out = append(out, s)
		}
	}
	return out
}

// Alias returns the display alias of a canonical ID.
func (g *Graph) Alias(id string) (string, bool) {
	if s, ok := g.skills[id]; ok && s.Alias != "" {
		return s.Alias, true
	}
	return g.resolver.Alias(id)
}

// DisplayName returns a human-readable name for ref, or ref itself when unknown.
func (g *Graph) DisplayName(ref string) string {
	if s, ok := g.Skill(ref); ok {
		return s.DisplayName()
	}
	return ref
}

// Category looks up a category by ID.
func (g *Graph) Category(id string) (catalog.Category, bool) {
	c, ok := g.categories[id]
	return c, ok
}

// Categories returns every category ordered by Order, then ID.
func (g *Graph) Categories() []catalog.Category {
	return g.categoriesWhere(func(catalog.Category) bool { return true })
}

// TopLevelCategories returns categories without a parent.
func (g *Graph) TopLevelCategories() []catalog.Category {
	return g.categoriesWhere(func(c catalog.Category) bool { return c.Parent == "" })
}

// Subcategories returns the direct children of parent.
func (g *Graph) Subcategories(parent string) []catalog.Category {
	return g.categoriesWhere(func(c catalog.Category) bool { return c.Parent == parent })
}

func (g *Graph) categoriesWhere(keep func(catalog.Category) bool) []catalog.Category {
	var out []catalog.Category
	for _, c := range g.categories {
		if keep(c) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// inCategoryTree reports whether category is root or one of its descendants.
func (g *Graph) inCategoryTree(category, root string) bool {
	for depth := 0; category != "" && depth <= len(g.categories); depth++ {
		if category == root {
			return true
		}
		category = g.categories[category].Parent
	}
	return false
}

// DanglingReferences lists relationships whose target is not in the catalog.
func (g *Graph) DanglingReferences() []DanglingReference {
	var out []DanglingReference
	check := func(from string, kind RelationKind, target string) {
		if _, ok := g.skills[target]; !ok {
			out = append(out, DanglingReference{From: from, Kind: kind, Target: target})
		}
	}

	for _, id := range g.ids {
		s := g.skills[id]
		for _, rel := range s.ConflictsWith {
			check(id, KindConflicts, rel.SkillID)
		}
		for _, rel := range s.Recommends {
			check(id, KindRecommends, rel.SkillID)
		}
		for _, group := range s.Requires {
			for _, target := range group.SkillIDs {
				check(id, KindRequires, target)
			}
		}
		for _, rel := range s.Alternatives {
			check(id, KindAlternatives, rel.SkillID)
		}
		for _, rel := range s.Discourages {
			check(id, KindDiscourages, rel.SkillID)
		}
		for _, target := range s.RequiresSetup {
			check(id, KindSetup, target)
		}
	}
	return out
}
