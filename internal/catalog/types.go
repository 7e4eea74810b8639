package catalog

// Skill is one selectable component as described by its metadata.yaml.
type Skill struct {
	ID          string   `yaml:"id" validate:"required"`
	Alias       string   `yaml:"alias,omitempty"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Category    string   `yaml:"category" validate:"required"`
	Author      string   `yaml:"author"`
	Tags        []string `yaml:"tags,omitempty"`

	// Directory is the metadata file's directory relative to the skills root,
	// always slash separated. Filled in by the loader.
	Directory string `yaml:"-"`

	ConflictsWith    []string `yaml:"conflicts_with,omitempty"`
	CompatibleWith   []string `yaml:"compatible_with,omitempty"`
	Requires         []string `yaml:"requires,omitempty"`
	RequiresSetup    []string `yaml:"requires_setup,omitempty"`
	ProvidesSetupFor []string `yaml:"provides_setup_for,omitempty"`
}

// Category groups skills for presentation and selection rules.
type Category struct {
	ID        string `yaml:"-"`
	Name      string `yaml:"name" validate:"required"`
	Domain    string `yaml:"domain,omitempty"`
	Exclusive bool   `yaml:"exclusive"`
	Required  bool   `yaml:"required"`
	Parent    string `yaml:"parent,omitempty"`
	Order     int    `yaml:"order"`
}

// ConflictRule lists skills that mutually exclude each other.
type ConflictRule struct {
	Skills []string `yaml:"skills" validate:"min=2"`
	Reason string   `yaml:"reason"`
}

// DiscourageRule is an advisory ConflictRule; it never blocks selection.
type DiscourageRule struct {
	Skills []string `yaml:"skills" validate:"min=2"`
	Reason string   `yaml:"reason"`
}

// RecommendRule suggests skills once When is selected.
type RecommendRule struct {
	When    string   `yaml:"when" validate:"required"`
	Suggest []string `yaml:"suggest" validate:"min=1"`
	Reason  string   `yaml:"reason"`
}

// RequireRule declares that Skill needs all of Needs, or any one of them when NeedsAny is set.
type RequireRule struct {
	Skill    string   `yaml:"skill" validate:"required"`
	Needs    []string `yaml:"needs" validate:"min=1"`
	NeedsAny bool     `yaml:"needs_any"`
	Reason   string   `yaml:"reason"`
}

// AlternativeGroup marks interchangeable skills serving the same purpose.
type AlternativeGroup struct {
	Purpose string   `yaml:"purpose"`
	Skills  []string `yaml:"skills" validate:"min=2"`
}

// Relationships holds the authored rule families of the matrix.
type Relationships struct {
	Conflicts    []ConflictRule     `yaml:"conflicts" validate:"dive"`
	Discourages  []DiscourageRule   `yaml:"discourages" validate:"dive"`
	Recommends   []RecommendRule    `yaml:"recommends" validate:"dive"`
	Requires     []RequireRule      `yaml:"requires" validate:"dive"`
	Alternatives []AlternativeGroup `yaml:"alternatives" validate:"dive"`
}

// Matrix is the parsed skills-matrix.yaml.
type Matrix struct {
	Version       string              `yaml:"version" validate:"required"`
	Categories    map[string]Category `yaml:"categories" validate:"required,min=1,dive"`
	Relationships Relationships       `yaml:"relationships"`
	SkillAliases  map[string]string   `yaml:"skill_aliases,omitempty"`
}

// Stack is a pre-built bundle of skills. Skills maps category to
// subcategory to an abbreviated skill reference.
type Stack struct {
	ID          string                       `yaml:"id" validate:"required"`
	Name        string                       `yaml:"name" validate:"required"`
	Description string                       `yaml:"description"`
	Audience    []string                     `yaml:"audience,omitempty"`
	Skills      map[string]map[string]string `yaml:"skills"`
	Philosophy  string                       `yaml:"philosophy,omitempty"`

	// Entries lists Skills in the order the stack file declares them.
	// Filled in when decoding YAML; empty for stacks built in code.
	Entries []StackEntry `yaml:"-"`
}

// StackEntry is one category/subcategory slot of a stack.
type StackEntry struct {
	Category    string
	Subcategory string
	Ref         string
}

// StacksFile is the parsed stacks.yaml.
type StacksFile struct {
	Stacks []Stack `yaml:"stacks" validate:"dive"`
}

// Catalog is everything the engine needs, already parsed and validated.
type Catalog struct {
	Matrix *Matrix
	Skills []Skill
	Stacks []Stack
}
