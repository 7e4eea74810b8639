package matrix

import "github.com/andywolf/skillmatrix/internal/catalog"

// Relation points at another skill by canonical ID.
type Relation struct {
	SkillID string `json:"skill_id" yaml:"skill_id"`
	Reason  string `json:"reason" yaml:"reason"`
}

// RequirementGroup is satisfied when all SkillIDs are selected, or any one
// of them when NeedsAny is set.
type RequirementGroup struct {
	SkillIDs []string `json:"skill_ids" yaml:"skill_ids"`
	NeedsAny bool     `json:"needs_any" yaml:"needs_any"`
	Reason   string   `json:"reason" yaml:"reason"`
}

// ResolvedSkill is a skill with every relationship resolved to canonical IDs.
// Records are shared by all readers of a Graph and must not be modified.
type ResolvedSkill struct {
	ID          string   `json:"id" yaml:"id"`
	Alias       string   `json:"alias,omitempty" yaml:"alias,omitempty"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Category    string   `json:"category" yaml:"category"`
	Author      string   `json:"author" yaml:"author"`
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Directory   string   `json:"directory,omitempty" yaml:"directory,omitempty"`

	ConflictsWith []Relation         `json:"conflicts_with,omitempty" yaml:"conflicts_with,omitempty"`
	Recommends    []Relation         `json:"recommends,omitempty" yaml:"recommends,omitempty"`
	RecommendedBy []Relation         `json:"recommended_by,omitempty" yaml:"recommended_by,omitempty"`
	Requires      []RequirementGroup `json:"requires,omitempty" yaml:"requires,omitempty"`
	RequiredBy    []Relation         `json:"required_by,omitempty" yaml:"required_by,omitempty"`
	Alternatives  []Relation         `json:"alternatives,omitempty" yaml:"alternatives,omitempty"`
	Discourages   []Relation         `json:"discourages,omitempty" yaml:"discourages,omitempty"`

	// Setup hints, resolved but not enforced.
	RequiresSetup    []string `json:"requires_setup,omitempty" yaml:"requires_setup,omitempty"`
	ProvidesSetupFor []string `json:"provides_setup_for,omitempty" yaml:"provides_setup_for,omitempty"`
}

// DisplayName returns Name, falling back to the alias and then the ID.
func (s *ResolvedSkill) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	if s.Alias != "" {
		return s.Alias
	}
	return s.ID
}

// ResolvedStack is a template whose references are canonical IDs.
type ResolvedStack struct {
	ID          string                       `json:"id" yaml:"id"`
	Name        string                       `json:"name" yaml:"name"`
	Description string                       `json:"description" yaml:"description"`
	Audience    []string                     `json:"audience,omitempty" yaml:"audience,omitempty"`
	Skills      map[string]map[string]string `json:"skills" yaml:"skills"`
	AllSkillIDs []string                     `json:"all_skill_ids" yaml:"all_skill_ids"`
	Philosophy  string                       `json:"philosophy,omitempty" yaml:"philosophy,omitempty"`
}

// Options tunes selection queries.
type Options struct {
	// ExpertMode skips conflict and requirement enforcement.
	ExpertMode bool
}

// Availability is the selectability of one skill against a selection.
// At most one of Disabled, Discouraged and Recommended is set.
type Availability struct {
	Selectable        bool   `json:"selectable" yaml:"selectable"`
	Disabled          bool   `json:"disabled" yaml:"disabled"`
	DisabledReason    string `json:"disabled_reason,omitempty" yaml:"disabled_reason,omitempty"`
	Discouraged       bool   `json:"discouraged" yaml:"discouraged"`
	DiscouragedReason string `json:"discouraged_reason,omitempty" yaml:"discouraged_reason,omitempty"`
	Recommended       bool   `json:"recommended" yaml:"recommended"`
	RecommendedReason string `json:"recommended_reason,omitempty" yaml:"recommended_reason,omitempty"`
}

// SkillOption is a skill annotated for display in a selection grid.
type SkillOption struct {
	Skill    *ResolvedSkill
	Selected bool
	Availability
}

// RelationKind names a relationship list on ResolvedSkill.
type RelationKind string

const (
	KindConflicts    RelationKind = "conflicts_with"
	KindRecommends   RelationKind = "recommends"
	KindRequires     RelationKind = "requires"
	KindAlternatives RelationKind = "alternatives"
	KindDiscourages  RelationKind = "discourages"
	KindSetup        RelationKind = "requires_setup"
)

// DanglingReference is a relationship whose target is not in the catalog.
type DanglingReference struct {
	From   string
	Kind   RelationKind
	Target string
}

// Graph is the resolved, cross-referenced catalog. It is immutable once
// returned from Build and safe for concurrent readers.
type Graph struct {
	version    string
	categories map[string]catalog.Category
	skills     map[string]*ResolvedSkill
	ids        []string
	resolver   *Resolver
	stacks     []ResolvedStack
}
