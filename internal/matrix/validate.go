package matrix

import (
	"fmt"
	"sort"
	"strings"
)

// IssueKind classifies a selection problem.
type IssueKind string

const (
	IssueUnknownSkill          IssueKind = "unknown_skill"
	IssueConflict              IssueKind = "conflict"
	IssueMissingRequirement    IssueKind = "missing_requirement"
	IssueExclusiveCategory     IssueKind = "exclusive_category"
	IssueRequiredCategory      IssueKind = "required_category"
	IssueDiscouraged           IssueKind = "discouraged"
	IssueMissingRecommendation IssueKind = "missing_recommendation"
)

// Issue is one finding about a selection.
type Issue struct {
	Kind    IssueKind `json:"kind" yaml:"kind"`
	Message string    `json:"message" yaml:"message"`
	Skills  []string  `json:"skills,omitempty" yaml:"skills,omitempty"`
}

// SelectionResult is the outcome of ValidateSelection.
type SelectionResult struct {
	Valid    bool    `json:"valid" yaml:"valid"`
	Errors   []Issue `json:"errors,omitempty" yaml:"errors,omitempty"`
	Warnings []Issue `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// ValidateSelection checks a complete selection. Conflicts, unmet
// requirements and exclusive-category violations are errors, downgraded to
// warnings in expert mode. Unknown skills and empty required categories are
// always errors.
func (g *Graph) ValidateSelection(selection []string, opts Options) SelectionResult {
	var result SelectionResult
	enforce := func(issue Issue) {
		if opts.ExpertMode {
			result.Warnings = append(result.Warnings, issue)
			return
		}
		result.Errors = append(result.Errors, issue)
	}

	var skills []*ResolvedSkill
	for _, ref := range selection {
		s, ok := g.Skill(ref)
		if !ok {
			result.Errors = append(result.Errors, Issue{
				Kind:    IssueUnknownSkill,
				Message: fmt.Sprintf("unknown skill %q", ref),
				Skills:  []string{ref},
			})
			continue
		}
		if !containsSkill(skills, s.ID) {
			skills = append(skills, s)
		}
	}
	selected := make(map[string]bool, len(skills))
	for _, s := range skills {
		selected[s.ID] = true
	}

	reported := make(map[string]bool)
	for _, s := range skills {
		for _, rel := range s.ConflictsWith {
			if !selected[rel.SkillID] || reported[pairKey(s.ID, rel.SkillID)] {
				continue
			}
			reported[pairKey(s.ID, rel.SkillID)] = true
			enforce(Issue{
				Kind:    IssueConflict,
				Message: fmt.Sprintf("%s conflicts with %s: %s", s.DisplayName(), g.DisplayName(rel.SkillID), rel.Reason),
				Skills:  []string{s.ID, rel.SkillID},
			})
		}

		for _, group := range s.Requires {
			if groupSatisfied(group, selected) {
				continue
			}
			enforce(Issue{
				Kind:    IssueMissingRequirement,
				Message: fmt.Sprintf("%s %s", s.DisplayName(), g.requirementReason(group)),
				Skills:  append([]string{s.ID}, group.SkillIDs...),
			})
		}

		for _, rel := range s.Discourages {
			if !selected[rel.SkillID] || reported["discourage:"+pairKey(s.ID, rel.SkillID)] {
				continue
			}
			reported["discourage:"+pairKey(s.ID, rel.SkillID)] = true
			result.Warnings = append(result.Warnings, Issue{
				Kind:    IssueDiscouraged,
				Message: fmt.Sprintf("%s with %s is discouraged: %s", s.DisplayName(), g.DisplayName(rel.SkillID), rel.Reason),
				Skills:  []string{s.ID, rel.SkillID},
			})
		}

		for _, rec := range s.Recommends {
			target, ok := g.skills[rec.SkillID]
			if !ok || selected[rec.SkillID] {
				continue
			}
			if g.availability(target, selected, nil, opts).Disabled {
				continue
			}
			result.Warnings = append(result.Warnings, Issue{
				Kind:    IssueMissingRecommendation,
				Message: fmt.Sprintf("%s recommends %s", s.DisplayName(), target.DisplayName()),
				Skills:  []string{s.ID, target.ID},
			})
		}
	}

	for _, cat := range g.Categories() {
		var inCategory []string
		hasAny := false
		for _, s := range skills {
			if s.Category == cat.ID {
				inCategory = append(inCategory, s.ID)
			}
			if g.inCategoryTree(s.Category, cat.ID) {
				hasAny = true
			}
		}

		if cat.Exclusive && len(inCategory) > 1 {
			enforce(Issue{
				Kind:    IssueExclusiveCategory,
				Message: fmt.Sprintf("only one %s skill may be selected, got %d", cat.Name, len(inCategory)),
				Skills:  inCategory,
			})
		}
		if cat.Required && !hasAny {
			result.Errors = append(result.Errors, Issue{
				Kind:    IssueRequiredCategory,
				Message: fmt.Sprintf("a %s skill is required", cat.Name),
			})
		}
	}

	result.Valid = len(result.Errors) == 0
	return result
}

func pairKey(a, b string) string {
	pair := []string{a, b}
	sort.Strings(pair)
	return strings.Join(pair, "\x00")
}

func containsSkill(skills []*ResolvedSkill, id string) bool {
	for _, s := range skills {
		if s.ID == id {
			return true
		}
	}
	return false
}
