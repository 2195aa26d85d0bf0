package levels

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed defaults/levels.yaml
var defaultCatalogYAML []byte

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	lvls, err := ParseYAML(defaultCatalogYAML)
	if err != nil {
		return nil, fmt.Errorf("levels: embedded catalog: %w", err)
	}
	return New(lvls)
}

// Load builds a catalog from path. An empty path selects the embedded
// catalog; a directory is scanned recursively for .yaml/.yml files whose
// levels are merged; anything else is parsed as a single catalog file.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("levels: %w", err)
	}

	if !info.IsDir() {
		lvls, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		return New(lvls)
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(p)) {
		case ".yaml", ".yml":
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walking directory %s: %w", path, err)
	}

	// Deterministic merge order
	sort.Strings(files)

	var all []Level
	for _, f := range files {
		lvls, err := loadFile(f)
		if err != nil {
			return nil, err
		}
		all = append(all, lvls...)
	}

	return New(all)
}

func loadFile(path string) ([]Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: reading file %s: %w", path, err)
	}
	lvls, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("levels: parsing file %s: %w", path, err)
	}
	return lvls, nil
}
