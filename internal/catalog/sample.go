package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed all:sample
var embeddedSample embed.FS

// SampleFS returns the bundled example catalog rooted at its top directory.
func SampleFS() fs.FS {
	sub, err := fs.Sub(embeddedSample, "sample")
	if err != nil {
		panic(fmt.Sprintf("embedded sample catalog missing: %v", err))
	}
	return sub
}

// InstallSample writes the bundled example catalog to rootDir.
// Existing files are kept unless force is set.
func InstallSample(rootDir string, force bool) error {
	sample := SampleFS()

	return fs.WalkDir(sample, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		target := filepath.Join(rootDir, filepath.FromSlash(p))
		if d.IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", target, err)
			}
			return nil
		}

		// Check if already exists
		if _, err := os.Stat(target); err == nil && !force {
			return nil
		}

		content, err := fs.ReadFile(sample, p)
		if err != nil {
			return fmt.Errorf("failed to read embedded %s: %w", p, err)
		}

		if err := os.WriteFile(target, content, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}
		return nil
	})
}
