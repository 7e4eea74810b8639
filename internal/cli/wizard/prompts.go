// Package wizard provides interactive prompts for CLI commands.
package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/andywolf/skillmatrix/internal/catalog"
	"github.com/andywolf/skillmatrix/internal/matrix"
	"github.com/charmbracelet/huh"
)

// ErrAborted is returned when the user declines the final selection.
var ErrAborted = errors.New("selection discarded")

// SelectSkills walks the category tree one page per category, starting
// from initial, and returns the confirmed selection as canonical IDs.
func SelectSkills(g *matrix.Graph, initial []string, opts matrix.Options) ([]string, error) {
	selection := append([]string(nil), initial...)
	var notes []string

	for _, cat := range pageCategories(g) {
		if disabled, reason := g.IsCategoryFullyDisabled(cat.ID, selection, opts); disabled {
			notes = append(notes, fmt.Sprintf("%s skipped: %s", cat.Name, reason))
			continue
		}

		options := visibleOptions(g.AvailableInCategory(cat.ID, selection, opts))
		if len(options) == 0 {
			continue
		}

		picks, err := promptCategory(g, cat, options)
		if err != nil {
			return nil, err
		}

		var dropped []string
		selection, dropped = applyPicks(g, selection, cat.ID, picks, opts)
		if len(dropped) > 0 {
			notes = append(notes, fmt.Sprintf("Removed %s (required a deselected skill)", displayNames(g, dropped)))
		}
	}

	confirmed, err := confirmSelection(g, selection, notes, opts)
	if err != nil {
		return nil, err
	}
	if !confirmed {
		return nil, ErrAborted
	}
	return selection, nil
}

func promptCategory(g *matrix.Graph, cat catalog.Category, options []matrix.SkillOption) ([]string, error) {
	title := categoryTitle(g, cat)
	description := categoryDescription(cat)

	if cat.Exclusive {
		var pick string
		var huhOptions []huh.Option[string]
		if !cat.Required {
			huhOptions = append(huhOptions, huh.NewOption("None", ""))
		}
		for _, o := range options {
			huhOptions = append(huhOptions, huh.NewOption(optionLabel(o), o.Skill.ID))
			if o.Selected && pick == "" {
				pick = o.Skill.ID
			}
		}

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title(title).
					Description(description).
					Options(huhOptions...).
					Value(&pick),
			),
		)
		if err := form.Run(); err != nil {
			return nil, fmt.Errorf("prompt cancelled: %w", err)
		}
		if pick == "" {
			return nil, nil
		}
		return []string{pick}, nil
	}

	var picks []string
	huhOptions := make([]huh.Option[string], 0, len(options))
	for _, o := range options {
		huhOptions = append(huhOptions, huh.NewOption(optionLabel(o), o.Skill.ID).Selected(o.Selected))
	}

	field := huh.NewMultiSelect[string]().
		Title(title).
		Description(description).
		Options(huhOptions...).
		Value(&picks)
	if cat.Required {
		field = field.Validate(func(v []string) error {
			if len(v) == 0 {
				return fmt.Errorf("a %s skill is required", cat.Name)
			}
			return nil
		})
	}

	if err := huh.NewForm(huh.NewGroup(field)).Run(); err != nil {
		return nil, fmt.Errorf("prompt cancelled: %w", err)
	}
	return picks, nil
}

func confirmSelection(g *matrix.Graph, selection, notes []string, opts matrix.Options) (bool, error) {
	result := g.ValidateSelection(selection, opts)

	var summary strings.Builder
	fmt.Fprintf(&summary, "Skills: %s\n", displayNames(g, selection))
	for _, n := range notes {
		fmt.Fprintf(&summary, "\n%s", n)
	}
	for _, issue := range result.Errors {
		fmt.Fprintf(&summary, "\nError: %s", issue.Message)
	}
	for _, issue := range result.Warnings {
		fmt.Fprintf(&summary, "\nWarning: %s", issue.Message)
	}

	confirmed := result.Valid
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Selection Summary").
				Description(summary.String()),

			huh.NewConfirm().
				Title("Use this selection?").
				Value(&confirmed),
		),
	)

	if err := form.Run(); err != nil {
		return false, fmt.Errorf("prompt cancelled: %w", err)
	}
	return confirmed, nil
}

// pageCategories orders the wizard pages: each top-level category that holds
// skills directly, followed by its subcategories.
func pageCategories(g *matrix.Graph) []catalog.Category {
	var pages []catalog.Category
	for _, top := range g.TopLevelCategories() {
		if len(g.SkillsInCategory(top.ID)) > 0 {
			pages = append(pages, top)
		}
		for _, sub := range g.Subcategories(top.ID) {
			if len(g.SkillsInCategory(sub.ID)) > 0 {
				pages = append(pages, sub)
			}
		}
	}
	return pages
}

// visibleOptions drops disabled skills unless they are already selected.
func visibleOptions(options []matrix.SkillOption) []matrix.SkillOption {
	var visible []matrix.SkillOption
	for _, o := range options {
		if o.Disabled && !o.Selected {
			continue
		}
		visible = append(visible, o)
	}
	return visible
}

// applyPicks replaces the category's part of the selection with picks.
// Selected skills that depended on a deselected one are removed as well,
// but only when they are disabled against what is left; a needs-any
// dependent still covered by another skill stays. The check repeats until
// nothing changes so transitive drops are caught.
func applyPicks(g *matrix.Graph, selection []string, categoryID string, picks []string, opts matrix.Options) (next, dropped []string) {
	inCategory := make(map[string]bool)
	for _, s := range g.SkillsInCategory(categoryID) {
		inCategory[s.ID] = true
	}
	picked := make(map[string]bool, len(picks))
	for _, id := range picks {
		picked[id] = true
	}

	remove := make(map[string]bool)
	var candidates []string
	isCandidate := make(map[string]bool)
	for _, ref := range selection {
		id := g.Resolve(ref)
		if !inCategory[id] || picked[id] {
			continue
		}
		remove[id] = true
		for _, dep := range g.DependentsOf(id, selection) {
			if !inCategory[dep] && !picked[dep] && !isCandidate[dep] {
				isCandidate[dep] = true
				candidates = append(candidates, dep)
			}
		}
	}

	seen := make(map[string]bool)
	for _, ref := range selection {
		id := g.Resolve(ref)
		if remove[id] || seen[id] {
			continue
		}
		seen[id] = true
		next = append(next, id)
	}
	for _, id := range picks {
		if !seen[id] {
			seen[id] = true
			next = append(next, id)
		}
	}

	for changed := true; changed; {
		changed = false
		for _, dep := range candidates {
			if remove[dep] || !g.Availability(dep, next, opts).Disabled {
				continue
			}
			remove[dep] = true
			dropped = append(dropped, dep)
			next = without(next, dep)
			changed = true
		}
	}
	return next, dropped
}

func without(ids []string, id string) []string {
	var out []string
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func optionLabel(o matrix.SkillOption) string {
	name := o.Skill.DisplayName()
	switch {
	case o.Disabled:
		return fmt.Sprintf("%s (unavailable: %s)", name, o.DisabledReason)
	case o.Discouraged:
		return fmt.Sprintf("%s (discouraged: %s)", name, o.DiscouragedReason)
	case o.Recommended:
		return fmt.Sprintf("%s (recommended: %s)", name, o.RecommendedReason)
	}
	return name
}

func categoryTitle(g *matrix.Graph, cat catalog.Category) string {
	if cat.Parent == "" {
		return cat.Name
	}
	if parent, ok := g.Category(cat.Parent); ok {
		return parent.Name + " / " + cat.Name
	}
	return cat.Name
}

func categoryDescription(cat catalog.Category) string {
	var parts []string
	if cat.Exclusive {
		parts = append(parts, "pick one")
	}
	if cat.Required {
		parts = append(parts, "required")
	}
	return strings.Join(parts, ", ")
}

func displayNames(g *matrix.Graph, ids []string) string {
	if len(ids) == 0 {
		return "none"
	}
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, g.DisplayName(id))
	}
	return strings.Join(names, ", ")
}
