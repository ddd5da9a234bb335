// Package blueprint ships the built-in project layouts as embedded
// declarative manifests. The catalog is pure data; all materialization logic
// lives in the scaffold package.
package blueprint

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/skelkit/skel/internal/manifest"
)

//go:embed *.yaml
var embedded embed.FS

// Blueprint is one built-in layout: its catalog name and parsed manifest.
type Blueprint struct {
	Name     string
	Manifest manifest.Manifest
}

// Names lists the built-in blueprint names, sorted.
func Names() ([]string, error) {
	return listNames(embedded)
}

func listNames(fsys fs.FS) ([]string, error) {
	files, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob blueprints: %w", err)
	}
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, strings.TrimSuffix(f, ".yaml"))
	}
	sort.Strings(names)
	return names, nil
}

// All parses every built-in blueprint, sorted by name.
func All() ([]Blueprint, error) {
	names, err := Names()
	if err != nil {
		return nil, err
	}
	out := make([]Blueprint, 0, len(names))
	for _, name := range names {
		bp, err := Find(name)
		if err != nil {
			return nil, err
		}
		out = append(out, bp)
	}
	return out, nil
}

// Find loads one built-in blueprint by name.
func Find(name string) (Blueprint, error) {
	return find(embedded, name)
}

func find(fsys fs.FS, name string) (Blueprint, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Blueprint{}, fmt.Errorf("blueprint name is required")
	}
	b, err := fs.ReadFile(fsys, name+".yaml")
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Blueprint{}, fmt.Errorf("read blueprint %q: %w", name, err)
		}
		available, listErr := listNames(fsys)
		if listErr != nil || len(available) == 0 {
			return Blueprint{}, fmt.Errorf("blueprint %q not found", name)
		}
		return Blueprint{}, fmt.Errorf("blueprint %q not found (available: %s)", name, strings.Join(available, ", "))
	}
	m, err := manifest.Parse(b)
	if err != nil {
		return Blueprint{}, fmt.Errorf("blueprint %q: %w", name, err)
	}
	return Blueprint{Name: name, Manifest: m}, nil
}
