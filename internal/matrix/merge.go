// Package matrix resolves skill relationships into a queryable graph and
// answers selection questions against it: what is selectable, what a
// deselection would strand, and what a pre-built stack expands to.
package matrix

import (
	"fmt"
	"sort"

	"github.com/andywolf/skillmatrix/internal/catalog"
)

const (
	reasonDeclared   = "declared by component"
	reasonCompatible = "compatible with this component"
)

// resolvedRules is the matrix with every reference already canonical.
type resolvedRules struct {
	conflicts    []resolvedSet
	declared     []resolvedSet
	discourages  []resolvedSet
	recommends   []resolvedRecommend
	requires     []resolvedRequire
	alternatives []resolvedSet
}

type resolvedSet struct {
	skills []string
	reason string
}

type resolvedRecommend struct {
	when    string
	suggest []string
	reason  string
}

type resolvedRequire struct {
	skill    string
	needs    []string
	needsAny bool
	reason   string
}

// Build merges skills with the relationship matrix and derives inverse
// relationships. The returned graph is never mutated afterwards.
func Build(skills []catalog.Skill, m *catalog.Matrix) (*Graph, error) {
	if m == nil {
		return nil, fmt.Errorf("relationship matrix is required")
	}

	seen := make(map[string]bool, len(skills))
	for _, s := range skills {
		if s.ID == "" {
			return nil, fmt.Errorf("skill in %q has no id", s.Directory)
		}
		if seen[s.ID] {
			return nil, fmt.Errorf("duplicate skill id %q", s.ID)
		}
		seen[s.ID] = true
	}

	g := &Graph{
		version:    m.Version,
		categories: make(map[string]catalog.Category, len(m.Categories)),
		skills:     make(map[string]*ResolvedSkill, len(skills)),
		resolver:   NewResolver(skills, m.SkillAliases),
	}
	for id, cat := range m.Categories {
		if cat.ID == "" {
			cat.ID = id
		}
		g.categories[id] = cat
	}

	sorted := make([]catalog.Skill, len(skills))
	copy(sorted, skills)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	rules := resolveRules(g.resolver, m.Relationships)
	for _, s := range sorted {
		for _, ref := range s.ConflictsWith {
			rules.declared = append(rules.declared, resolvedSet{
				skills: []string{s.ID, g.resolver.Resolve(ref)},
				reason: reasonDeclared,
			})
		}
	}
	for _, s := range sorted {
		g.skills[s.ID] = mergeSkill(g.resolver, s, rules)
		g.ids = append(g.ids, s.ID)
	}

	deriveInverses(g)

	return g, nil
}

// FromCatalog builds the graph and resolves the catalog's stacks into it.
func FromCatalog(c *catalog.Catalog) (*Graph, error) {
	if c == nil {
		return nil, fmt.Errorf("catalog is required")
	}
	g, err := Build(c.Skills, c.Matrix)
	if err != nil {
		return nil, err
	}
	g.stacks = g.ResolveStacks(c.Stacks)
	return g, nil
}

func resolveRules(r *Resolver, rel catalog.Relationships) resolvedRules {
	var out resolvedRules
	for _, rule := range rel.Conflicts {
		out.conflicts = append(out.conflicts, resolvedSet{skills: r.ResolveAll(rule.Skills), reason: rule.Reason})
	}
	for _, rule := range rel.Discourages {
		out.discourages = append(out.discourages, resolvedSet{skills: r.ResolveAll(rule.Skills), reason: rule.Reason})
	}
	for _, rule := range rel.Alternatives {
		out.alternatives = append(out.alternatives, resolvedSet{skills: r.ResolveAll(rule.Skills), reason: rule.Purpose})
	}
	for _, rule := range rel.Recommends {
		out.recommends = append(out.recommends, resolvedRecommend{
			when:    r.Resolve(rule.When),
			suggest: r.ResolveAll(rule.Suggest),
			reason:  rule.Reason,
		})
	}
	for _, rule := range rel.Requires {
		out.requires = append(out.requires, resolvedRequire{
			skill:    r.Resolve(rule.Skill),
			needs:    r.ResolveAll(rule.Needs),
			needsAny: rule.NeedsAny,
			reason:   rule.Reason,
		})
	}
	return out
}

func mergeSkill(r *Resolver, s catalog.Skill, rules resolvedRules) *ResolvedSkill {
	rs := &ResolvedSkill{
		ID:          s.ID,
		Alias:       s.Alias,
		Name:        s.Name,
		Description: s.Description,
		Category:    s.Category,
		Author:      s.Author,
		Tags:        s.Tags,
		Directory:   s.Directory,
	}
	if rs.Alias == "" {
		rs.Alias, _ = r.Alias(s.ID)
	}

	conflicts := newRelationList(s.ID)
	for _, ref := range s.ConflictsWith {
		conflicts.add(r.Resolve(ref), reasonDeclared)
	}
	addSymmetric(conflicts, s.ID, rules.conflicts)
	// Conflicts declared inline by the other side of the pair.
	addSymmetric(conflicts, s.ID, rules.declared)
	rs.ConflictsWith = conflicts.items

	recommends := newRelationList(s.ID)
	for _, ref := range s.CompatibleWith {
		recommends.add(r.Resolve(ref), reasonCompatible)
	}
	for _, rule := range rules.recommends {
		if rule.when != s.ID {
			continue
		}
		for _, id := range rule.suggest {
			recommends.add(id, rule.reason)
		}
	}
	rs.Recommends = recommends.items

	if len(s.Requires) > 0 {
		rs.Requires = append(rs.Requires, RequirementGroup{
			SkillIDs: r.ResolveAll(s.Requires),
			Reason:   reasonDeclared,
		})
	}
	for _, rule := range rules.requires {
		if rule.skill != s.ID || len(rule.needs) == 0 {
			continue
		}
		rs.Requires = append(rs.Requires, RequirementGroup{
			SkillIDs: rule.needs,
			NeedsAny: rule.needsAny,
			Reason:   rule.reason,
		})
	}

	alternatives := newRelationList(s.ID)
	addSymmetric(alternatives, s.ID, rules.alternatives)
	rs.Alternatives = alternatives.items

	discourages := newRelationList(s.ID)
	addSymmetric(discourages, s.ID, rules.discourages)
	rs.Discourages = discourages.items

	rs.RequiresSetup = r.ResolveAll(s.RequiresSetup)
	rs.ProvidesSetupFor = r.ResolveAll(s.ProvidesSetupFor)

	return rs
}

// addSymmetric adds every other member of each set that contains id.
func addSymmetric(list *relationList, id string, sets []resolvedSet) {
	for _, set := range sets {
		if !contains(set.skills, id) {
			continue
		}
		for _, other := range set.skills {
			list.add(other, set.reason)
		}
	}
}

// relationList keeps the first reason seen for each target and never
// relates a skill to itself.
type relationList struct {
	self  string
	items []Relation
	seen  map[string]bool
}

func newRelationList(self string) *relationList {
	return &relationList{self: self, seen: make(map[string]bool)}
}

func (l *relationList) add(id, reason string) {
	if id == "" || id == l.self || l.seen[id] {
		return
	}
	l.seen[id] = true
	l.items = append(l.items, Relation{SkillID: id, Reason: reason})
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
