package manifest

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/skelkit/skel/internal/scaffold"
)

// Manifest is a declarative project layout: a root directory name and the
// tree beneath it. In the YAML form, a mapping is a directory and a scalar
// (string or null) is a file whose value seeds its initial content.
type Manifest struct {
	Name string
	Root *scaffold.Node
}

// Load reads and parses a manifest file.
func Load(path string) (Manifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("read manifest %s: %w", path, err)
	}
	m, err := Parse(b)
	if err != nil {
		return Manifest{}, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return m, nil
}

// Parse decodes manifest YAML. The top level must be a single-entry mapping
// naming the project's root directory, and the root value must itself be a
// mapping.
func Parse(b []byte) (Manifest, error) {
	if strings.TrimSpace(string(b)) == "" {
		return Manifest{}, fmt.Errorf("manifest is empty")
	}

	var top map[string]any
	if err := yaml.Unmarshal(b, &top); err != nil {
		return Manifest{}, fmt.Errorf("parse yaml: %w", err)
	}
	if len(top) != 1 {
		return Manifest{}, fmt.Errorf("top level must be a single-entry mapping naming the project root, got %d entries", len(top))
	}

	var name string
	var value any
	for k, v := range top {
		name, value = k, v
	}
	if err := scaffold.ValidateName(name); err != nil {
		return Manifest{}, fmt.Errorf("invalid root name: %w", err)
	}

	root, err := nodeFromValue(name, value)
	if err != nil {
		return Manifest{}, err
	}
	if root.Kind != scaffold.KindDir {
		return Manifest{}, fmt.Errorf("root %q must be a mapping (directory)", name)
	}
	return Manifest{Name: name, Root: root}, nil
}

// nodeFromValue dispatches on the decoded YAML value type: mapping means
// directory, scalar means file.
func nodeFromValue(name string, value any) (*scaffold.Node, error) {
	switch v := value.(type) {
	case map[string]any:
		children := make(map[string]*scaffold.Node, len(v))
		for childName, childValue := range v {
			if err := scaffold.ValidateName(childName); err != nil {
				return nil, fmt.Errorf("under %q: %w", name, err)
			}
			child, err := nodeFromValue(childName, childValue)
			if err != nil {
				return nil, err
			}
			children[childName] = child
		}
		return scaffold.Dir(children), nil
	case nil:
		return scaffold.File(""), nil
	case string:
		return scaffold.File(v), nil
	default:
		return nil, fmt.Errorf("entry %q: unsupported value type %T (want mapping, string, or null)", name, value)
	}
}
