package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/andywolf/skillmatrix/internal/config"
	"github.com/andywolf/skillmatrix/internal/matrix"
	"gopkg.in/yaml.v3"
)

func yamlOutput() bool {
	return cfg != nil && cfg.Output.Format == config.FormatYAML
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return enc.Close()
}

// availabilityLabel renders the non-normal availability states, or "" when
// the skill is plainly selectable.
func availabilityLabel(a matrix.Availability) string {
	switch {
	case a.Disabled:
		return withReason("disabled", a.DisabledReason)
	case a.Discouraged:
		return withReason("discouraged", a.DiscouragedReason)
	case a.Recommended:
		return withReason("recommended", a.RecommendedReason)
	}
	return ""
}

func withReason(state, reason string) string {
	if reason == "" {
		return state
	}
	return state + ": " + reason
}

func relationNames(g *matrix.Graph, rels []matrix.Relation) string {
	names := make([]string, 0, len(rels))
	for _, r := range rels {
		names = append(names, g.DisplayName(r.SkillID))
	}
	return strings.Join(names, ", ")
}

func skillNames(g *matrix.Graph, ids []string) string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, g.DisplayName(id))
	}
	return strings.Join(names, ", ")
}

func printIssues(w io.Writer, title string, issues []matrix.Issue) {
	if len(issues) == 0 {
		return
	}
	fmt.Fprintf(w, "%s:\n", title)
	for _, issue := range issues {
		fmt.Fprintf(w, "  [%s] %s\n", issue.Kind, issue.Message)
	}
}
