package matrix

import (
	"sort"

	"github.com/andywolf/skillmatrix/internal/catalog"
)

// ResolveStacks expands every stack's references to canonical IDs.
// AllSkillIDs follows the order the stack was authored in. No stacks
// resolve to an empty list.
func (g *Graph) ResolveStacks(stacks []catalog.Stack) []ResolvedStack {
	resolved := make([]ResolvedStack, 0, len(stacks))
	for _, stack := range stacks {
		resolved = append(resolved, g.resolveStack(stack))
	}
	return resolved
}

func (g *Graph) resolveStack(stack catalog.Stack) ResolvedStack {
	rs := ResolvedStack{
		ID:          stack.ID,
		Name:        stack.Name,
		Description: stack.Description,
		Audience:    stack.Audience,
		Skills:      make(map[string]map[string]string, len(stack.Skills)),
		AllSkillIDs: make([]string, 0),
		Philosophy:  stack.Philosophy,
	}

	for category, subs := range stack.Skills {
		rs.Skills[category] = make(map[string]string, len(subs))
	}

	seen := make(map[string]bool)
	for _, e := range stackEntries(stack) {
		if rs.Skills[e.Category] == nil {
			rs.Skills[e.Category] = make(map[string]string)
		}
		id := g.resolver.ResolveStackRef(e.Ref)
		rs.Skills[e.Category][e.Subcategory] = id
		if !seen[id] {
			seen[id] = true
			rs.AllSkillIDs = append(rs.AllSkillIDs, id)
		}
	}

	return rs
}

// stackEntries returns the stack's slots in authored order, falling back to
// sorted category and subcategory order when none was recorded.
func stackEntries(stack catalog.Stack) []catalog.StackEntry {
	if len(stack.Entries) > 0 {
		return stack.Entries
	}
	var entries []catalog.StackEntry
	for _, category := range sortedKeys(stack.Skills) {
		subs := stack.Skills[category]
		for _, sub := range sortedKeys(subs) {
			entries = append(entries, catalog.StackEntry{Category: category, Subcategory: sub, Ref: subs[sub]})
		}
	}
	return entries
}

// Stacks returns the stacks resolved when the graph was built from a catalog.
func (g *Graph) Stacks() []ResolvedStack {
	return g.stacks
}

// Stack looks up a resolved stack by ID.
func (g *Graph) Stack(id string) (ResolvedStack, bool) {
	for _, s := range g.stacks {
		if s.ID == id {
			return s, true
		}
	}
	return ResolvedStack{}, false
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
