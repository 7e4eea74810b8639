package matrix

// DependentsOf returns the selected skills that transitively require ref,
// closest dependents first. ref itself is never included. It only reports
// what a deselection would strand; it does not change the selection.
func (g *Graph) DependentsOf(ref string, selection []string) []string {
	start := g.resolver.Resolve(ref)

	selected := make([]*ResolvedSkill, 0, len(selection))
	for _, id := range g.resolver.ResolveAll(selection) {
		if s, ok := g.skills[id]; ok {
			selected = append(selected, s)
		}
	}

	result := make([]string, 0)
	visited := map[string]bool{start: true}
	queue := []string{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, s := range selected {
			if visited[s.ID] || !requiresID(s, current) {
				continue
			}
			visited[s.ID] = true
			result = append(result, s.ID)
			queue = append(queue, s.ID)
		}
	}

	return result
}

func requiresID(s *ResolvedSkill, id string) bool {
	for _, group := range s.Requires {
		if contains(group.SkillIDs, id) {
			return true
		}
	}
	return false
}
