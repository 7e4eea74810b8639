package matrix

// deriveInverses fills RecommendedBy and RequiredBy from the forward lists.
// It runs once inside Build, before the graph is handed to any reader.
// Targets missing from the catalog are skipped.
func deriveInverses(g *Graph) {
	requiredSeen := make(map[string]map[string]bool)

	for _, id := range g.ids {
		s := g.skills[id]

		for _, rec := range s.Recommends {
			target, ok := g.skills[rec.SkillID]
			if !ok {
				continue
			}
			target.RecommendedBy = append(target.RecommendedBy, Relation{SkillID: id, Reason: rec.Reason})
		}

		for _, group := range s.Requires {
			for _, needed := range group.SkillIDs {
				target, ok := g.skills[needed]
				if !ok {
					continue
				}
				if requiredSeen[needed] == nil {
					requiredSeen[needed] = make(map[string]bool)
				}
				if requiredSeen[needed][id] {
					continue
				}
				requiredSeen[needed][id] = true
				target.RequiredBy = append(target.RequiredBy, Relation{SkillID: id, Reason: group.Reason})
			}
		}
	}
}
