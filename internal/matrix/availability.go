package matrix

import (
	"fmt"
	"strings"
)

// Availability evaluates whether ref can be selected next to selection.
// Precedence is disabled, then discouraged, then recommended. Expert mode
// skips conflict and requirement checks but still reports discouragement.
func (g *Graph) Availability(ref string, selection []string, opts Options) Availability {
	skill, ok := g.Skill(ref)
	if !ok {
		return Availability{Disabled: true, DisabledReason: fmt.Sprintf("unknown skill %q", ref)}
	}
	return g.availability(skill, g.selectionSet(selection), selection, opts)
}

func (g *Graph) availability(skill *ResolvedSkill, selected map[string]bool, selection []string, opts Options) Availability {
	if !opts.ExpertMode {
		if reason, disabled := g.disabledReason(skill, selected); disabled {
			return Availability{Disabled: true, DisabledReason: reason}
		}
	}

	for _, rel := range skill.Discourages {
		if selected[rel.SkillID] {
			return Availability{Selectable: true, Discouraged: true, DiscouragedReason: rel.Reason}
		}
	}

	// Walk the selection in order so the first recommender decides the reason.
	for _, ref := range selection {
		source, ok := g.skills[g.resolver.Resolve(ref)]
		if !ok {
			continue
		}
		for _, rec := range source.Recommends {
			if rec.SkillID == skill.ID {
				return Availability{Selectable: true, Recommended: true, RecommendedReason: rec.Reason}
			}
		}
	}

	return Availability{Selectable: true}
}

func (g *Graph) disabledReason(skill *ResolvedSkill, selected map[string]bool) (string, bool) {
	for _, rel := range skill.ConflictsWith {
		if selected[rel.SkillID] {
			return rel.Reason, true
		}
	}
	for _, group := range skill.Requires {
		if !groupSatisfied(group, selected) {
			return g.requirementReason(group), true
		}
	}
	return "", false
}

// groupSatisfied checks a requirement group. A missing target can never be
// selected, so it can never satisfy the group.
func groupSatisfied(group RequirementGroup, selected map[string]bool) bool {
	if len(group.SkillIDs) == 0 {
		return true
	}
	if group.NeedsAny {
		for _, id := range group.SkillIDs {
			if selected[id] {
				return true
			}
		}
		return false
	}
	for _, id := range group.SkillIDs {
		if !selected[id] {
			return false
		}
	}
	return true
}

func (g *Graph) requirementReason(group RequirementGroup) string {
	if group.Reason != "" && group.Reason != reasonDeclared {
		return group.Reason
	}
	names := make([]string, 0, len(group.SkillIDs))
	for _, id := range group.SkillIDs {
		names = append(names, g.DisplayName(id))
	}
	if group.NeedsAny && len(names) > 1 {
		return "requires one of: " + strings.Join(names, ", ")
	}
	return "requires " + strings.Join(names, ", ")
}

// IsCategoryFullyDisabled reports whether every skill in the category is
// disabled, with the reason of the first one. An empty category is not
// considered disabled.
func (g *Graph) IsCategoryFullyDisabled(categoryID string, selection []string, opts Options) (bool, string) {
	skills := g.SkillsInCategory(categoryID)
	if len(skills) == 0 {
		return false, ""
	}

	selected := g.selectionSet(selection)
	reason := ""
	for _, skill := range skills {
		avail := g.availability(skill, selected, selection, opts)
		if !avail.Disabled {
			return false, ""
		}
		if reason == "" {
			reason = avail.DisabledReason
		}
	}
	return true, reason
}

// AvailableInCategory lists the category's skills annotated with their
// selection and availability state, in ID order.
func (g *Graph) AvailableInCategory(categoryID string, selection []string, opts Options) []SkillOption {
	selected := g.selectionSet(selection)

	var options []SkillOption
	for _, skill := range g.SkillsInCategory(categoryID) {
		options = append(options, SkillOption{
			Skill:        skill,
			Selected:     selected[skill.ID],
			Availability: g.availability(skill, selected, selection, opts),
		})
	}
	return options
}

// selectionSet resolves the selection. References to skills missing from
// the catalog are dropped, so they never satisfy or trigger anything.
func (g *Graph) selectionSet(selection []string) map[string]bool {
	set := make(map[string]bool, len(selection))
	for _, ref := range selection {
		id := g.resolver.Resolve(ref)
		if _, ok := g.skills[id]; ok {
			set[id] = true
		}
	}
	return set
}
