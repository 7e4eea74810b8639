package matrix

import (
	"sort"
	"strings"

	"github.com/andywolf/skillmatrix/internal/catalog"
)

// Resolver maps any accepted surface form of a skill reference to its
// canonical ID. Lookups are tried in a fixed order: explicit aliases, then
// skill directory paths, then short and legacy forms. Unknown references
// pass through unchanged.
type Resolver struct {
	aliases        map[string]string
	reverseAliases map[string]string
	directories    map[string]string
	shortForms     map[string]string
	known          map[string]bool
}

// NewResolver builds the lookup tables for skills and the matrix alias table.
func NewResolver(skills []catalog.Skill, aliases map[string]string) *Resolver {
	r := &Resolver{
		aliases:        make(map[string]string),
		reverseAliases: make(map[string]string),
		directories:    make(map[string]string),
		shortForms:     make(map[string]string),
		known:          make(map[string]bool, len(skills)),
	}

	sorted := make([]catalog.Skill, len(skills))
	copy(sorted, skills)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	ids := make([]string, 0, len(sorted))
	for _, s := range sorted {
		r.known[s.ID] = true
		ids = append(ids, s.ID)
	}

	// First registration wins on collisions; skills are visited in ID order.
	for _, s := range sorted {
		if s.Directory != "" {
			setOnce(r.directories, s.Directory, s.ID)
			setOnce(r.shortForms, s.Directory, s.ID)
		}
		setOnce(r.shortForms, lastSegment(s.ID), s.ID)
	}

	aliasNames := make([]string, 0, len(aliases))
	for alias := range aliases {
		aliasNames = append(aliasNames, alias)
	}
	sort.Strings(aliasNames)

	// Old rule files may still point aliases at pre-migration IDs. Map
	// those targets onto whichever canonical ID they exactly match or suffix.
	for _, alias := range aliasNames {
		target := aliases[alias]
		if _, ok := r.shortForms[target]; ok {
			continue
		}
		if r.known[target] {
			r.shortForms[target] = target
			continue
		}
		for _, id := range ids {
			if strings.HasSuffix(id, "/"+target) {
				r.shortForms[target] = id
				break
			}
		}
	}

	for _, s := range sorted {
		if s.Alias != "" {
			r.aliases[s.Alias] = s.ID
		}
	}
	for _, alias := range aliasNames {
		r.aliases[alias] = aliases[alias]
	}

	for _, alias := range aliasNames {
		setOnce(r.reverseAliases, r.chase(aliases[alias]), alias)
	}
	for _, s := range sorted {
		if s.Alias != "" {
			r.reverseAliases[s.ID] = s.Alias
		}
	}

	return r
}

// Resolve returns the canonical ID for ref. An alias whose target is itself
// a short form is followed one more hop through the short-form table, so
// for such aliases the result differs from a bare alias lookup, which would
// return the raw target.
func (r *Resolver) Resolve(ref string) string {
	if target, ok := r.aliases[ref]; ok {
		return r.chase(target)
	}
	if id, ok := r.directories[ref]; ok {
		return id
	}
	if id, ok := r.shortForms[ref]; ok {
		return id
	}
	return ref
}

// ResolveAll resolves every ref, keeping order and dropping repeats.
func (r *Resolver) ResolveAll(refs []string) []string {
	if len(refs) == 0 {
		return nil
	}
	out := make([]string, 0, len(refs))
	seen := make(map[string]bool, len(refs))
	for _, ref := range refs {
		id := r.Resolve(ref)
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// ResolveStackRef resolves a reference authored in a stack file. Stack
// files use aliases, so only the alias table is consulted first; the
// result then gets a second hop through the short-form table.
func (r *Resolver) ResolveStackRef(ref string) string {
	id := ref
	if target, ok := r.aliases[ref]; ok {
		id = target
	}
	if r.known[id] {
		return id
	}
	if canonical, ok := r.shortForms[id]; ok {
		return canonical
	}
	return id
}

// Alias returns the display alias for a canonical ID, if any.
func (r *Resolver) Alias(id string) (string, bool) {
	alias, ok := r.reverseAliases[id]
	return alias, ok
}

// Known reports whether id is a canonical skill ID.
func (r *Resolver) Known(id string) bool {
	return r.known[id]
}

func (r *Resolver) chase(target string) string {
	if r.known[target] {
		return target
	}
	if id, ok := r.shortForms[target]; ok {
		return id
	}
	return target
}

func setOnce(m map[string]string, key, value string) {
	if _, ok := m[key]; !ok {
		m[key] = value
	}
}

func lastSegment(id string) string {
	if i := strings.LastIndex(id, "/"); i >= 0 {
		return id[i+1:]
	}
	return id
}
