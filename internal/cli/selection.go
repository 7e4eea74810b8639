package cli

import (
	"fmt"
	"strings"

	"github.com/andywolf/skillmatrix/internal/matrix"
)

// stackPrefix marks a selection entry that expands to a whole stack.
const stackPrefix = "@"

// ExpandSelection takes --select values that may be comma separated skill
// references and/or stack references (e.g. "@react-fullstack") and expands
// them into a flat list of canonical skill IDs.
//
// Examples:
//   - ["react,zustand"] → [react ID, zustand ID]
//   - ["@vue-spa", "vitest"] → [every vue-spa skill..., vitest ID]
//
// References that do not resolve are kept as written so validation can
// report them. Duplicates are dropped; first occurrence wins.
func ExpandSelection(g *matrix.Graph, input []string) ([]string, error) {
	var result []string
	seen := make(map[string]bool)

	add := func(id string) {
		if !seen[id] {
			seen[id] = true
			result = append(result, id)
		}
	}

	for _, ref := range splitRefs(input) {
		if !strings.HasPrefix(ref, stackPrefix) {
			add(g.Resolve(ref))
			continue
		}

		stackID := strings.TrimPrefix(ref, stackPrefix)
		stack, ok := g.Stack(stackID)
		if !ok {
			return nil, fmt.Errorf("invalid selection %q: unknown stack %q", ref, stackID)
		}
		for _, id := range stack.AllSkillIDs {
			add(id)
		}
	}

	return result, nil
}

// splitRefs splits comma separated entries and drops blanks.
// (cobra's StringSlice already splits on commas, but config values do not)
func splitRefs(input []string) []string {
	var refs []string
	for _, item := range input {
		for _, segment := range strings.Split(item, ",") {
			if segment = strings.TrimSpace(segment); segment != "" {
				refs = append(refs, segment)
			}
		}
	}
	return refs
}

// currentSelection returns the expanded --select flag, falling back to
// selection.skills from the config file.
func currentSelection(g *matrix.Graph, flagValues []string) ([]string, error) {
	if len(flagValues) == 0 {
		flagValues = cfg.Selection.Skills
	}
	return ExpandSelection(g, flagValues)
}
