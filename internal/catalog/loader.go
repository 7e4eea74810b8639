// Package catalog loads the skill catalog (per-skill metadata, the relationship
// matrix and pre-built stacks) from disk into memory.
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	DefaultMatrixFile = "skills-matrix.yaml"
	DefaultStacksFile = "stacks.yaml"
	DefaultSkillsDir  = "skills"

	// MetadataFile is the per-skill metadata file name searched for under the skills dir.
	MetadataFile = "metadata.yaml"
)

var validate = validator.New()

// ValidationError reports a structurally invalid catalog file.
type ValidationError struct {
	File string
	Err  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.File, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Options controls where the loader looks inside the catalog root.
type Options struct {
	MatrixFile string
	StacksFile string
	SkillsDir  string

	// VersionConstraint, when set, must be satisfied by the matrix version (e.g. "^1").
	VersionConstraint string

	Logger *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.MatrixFile == "" {
		o.MatrixFile = DefaultMatrixFile
	}
	if o.StacksFile == "" {
		o.StacksFile = DefaultStacksFile
	}
	if o.SkillsDir == "" {
		o.SkillsDir = DefaultSkillsDir
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// Load reads a catalog rooted at dir on the local filesystem.
func Load(dir string, opts Options) (*Catalog, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	return LoadFS(os.DirFS(dir), opts)
}

// LoadFS reads a catalog from fsys. The matrix is mandatory; stacks are optional.
func LoadFS(fsys fs.FS, opts Options) (*Catalog, error) {
	opts = opts.withDefaults()

	matrix, err := LoadMatrix(fsys, opts.MatrixFile)
	if err != nil {
		return nil, err
	}
	if err := checkMatrixVersion(opts.MatrixFile, matrix.Version, opts.VersionConstraint); err != nil {
		return nil, err
	}
	opts.Logger.Debug("Loaded matrix",
		zap.String("file", opts.MatrixFile),
		zap.Int("categories", len(matrix.Categories)))

	skills, err := LoadSkills(fsys, opts.SkillsDir)
	if err != nil {
		return nil, err
	}
	opts.Logger.Debug("Loaded skills", zap.String("dir", opts.SkillsDir), zap.Int("skills", len(skills)))

	stacks, err := LoadStacks(fsys, opts.StacksFile)
	if err != nil {
		return nil, err
	}
	opts.Logger.Debug("Loaded stacks", zap.String("file", opts.StacksFile), zap.Int("stacks", len(stacks)))

	return &Catalog{Matrix: matrix, Skills: skills, Stacks: stacks}, nil
}

// LoadMatrix parses and validates the relationship matrix at name.
func LoadMatrix(fsys fs.FS, name string) (*Matrix, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read matrix: %w", err)
	}

	var matrix Matrix
	if err := yaml.Unmarshal(data, &matrix); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	if err := validate.Struct(&matrix); err != nil {
		return nil, &ValidationError{File: name, Err: err}
	}
	if _, err := semver.NewVersion(matrix.Version); err != nil {
		return nil, &ValidationError{File: name, Err: fmt.Errorf("version %q: %w", matrix.Version, err)}
	}

	for id, cat := range matrix.Categories {
		cat.ID = id
		matrix.Categories[id] = cat
	}
	for id, cat := range matrix.Categories {
		if cat.Parent == "" {
			continue
		}
		if _, ok := matrix.Categories[cat.Parent]; !ok {
			return nil, &ValidationError{
				File: name,
				Err:  fmt.Errorf("category %q has unknown parent %q", id, cat.Parent),
			}
		}
	}

	return &matrix, nil
}

func checkMatrixVersion(file, version, constraint string) error {
	if constraint == "" {
		return nil
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("invalid version constraint %q: %w", constraint, err)
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return &ValidationError{File: file, Err: fmt.Errorf("version %q: %w", version, err)}
	}
	if !c.Check(v) {
		return &ValidationError{File: file, Err: fmt.Errorf("version %s does not satisfy %s", version, constraint)}
	}
	return nil
}

// LoadSkills walks dir for metadata files. The result is sorted by ID.
func LoadSkills(fsys fs.FS, dir string) ([]Skill, error) {
	var skills []Skill

	err := fs.WalkDir(fsys, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() != MetadataFile {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", p, err)
		}

		var skill Skill
		if err := yaml.Unmarshal(data, &skill); err != nil {
			return fmt.Errorf("failed to parse %s: %w", p, err)
		}
		if err := validate.Struct(&skill); err != nil {
			return &ValidationError{File: p, Err: err}
		}

		rel := path.Dir(p)
		if dir != "." {
			rel = strings.TrimPrefix(strings.TrimPrefix(rel, dir), "/")
		}
		skill.Directory = rel

		skills = append(skills, skill)
		return nil
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("skills directory %q not found: %w", dir, err)
		}
		return nil, err
	}

	sort.Slice(skills, func(i, j int) bool {
		return skills[i].ID < skills[j].ID
	})

	return skills, nil
}

// LoadStacks parses the stacks file. A missing file yields no stacks.
func LoadStacks(fsys fs.FS, name string) ([]Stack, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read stacks: %w", err)
	}

	var file StacksFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	if err := validate.Struct(&file); err != nil {
		return nil, &ValidationError{File: name, Err: err}
	}

	return file.Stacks, nil
}
