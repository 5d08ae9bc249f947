package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

// Loader loads layout files from an asset directory using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new layout loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new layout loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// FS returns the asset filesystem images and fonts are read from
func (l *Loader) FS() fs.FS {
	return l.fsys
}

// LoadLayout loads layouts/<name>.json
func (l *Loader) LoadLayout(name string) (*LayoutConfig, error) {
	path := "layouts/" + name + ".json"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout %s: %w", name, err)
	}

	var cfg LayoutConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse layout %s: %w", name, err)
	}
	if cfg.Name == "" {
		cfg.Name = name
	}

	return &cfg, nil
}
