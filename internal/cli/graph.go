package cli

import (
	"fmt"

	"github.com/andywolf/skillmatrix/internal/catalog"
	"github.com/andywolf/skillmatrix/internal/matrix"
	"go.uber.org/zap"
)

// loadGraph loads the configured catalog and builds the relationship graph.
// Dangling references are logged rather than treated as fatal.
func loadGraph() (*matrix.Graph, error) {
	c, err := catalog.Load(cfg.Catalog.Path, catalog.Options{
		MatrixFile: cfg.Catalog.MatrixFile,
		StacksFile: cfg.Catalog.StacksFile,
		SkillsDir:  cfg.Catalog.SkillsDir,

		VersionConstraint: cfg.Catalog.VersionConstraint,
		Logger:            logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	g, err := matrix.FromCatalog(c)
	if err != nil {
		return nil, fmt.Errorf("failed to build relationship graph: %w", err)
	}

	for _, ref := range g.DanglingReferences() {
		logger.Warn("Skill references a missing skill",
			zap.String("skill", ref.From),
			zap.String("relation", string(ref.Kind)),
			zap.String("target", ref.Target))
	}
	logger.Debug("Built relationship graph",
		zap.String("version", g.Version()),
		zap.Int("skills", len(g.Skills())),
		zap.Int("stacks", len(g.Stacks())))

	return g, nil
}

func matrixOptions() matrix.Options {
	return matrix.Options{ExpertMode: cfg.Selection.ExpertMode}
}
