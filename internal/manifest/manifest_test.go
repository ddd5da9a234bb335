package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/skelkit/skel/internal/scaffold"
)

func TestParse_MappingsAreDirsScalarsAreFiles(t *testing.T) {
	m, err := Parse([]byte(`
my-app:
  src:
    main.go: ""
  docs: {}
  README.md: "# my-app"
  .gitignore:
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if m.Name != "my-app" {
		t.Fatalf("Name = %q, want %q", m.Name, "my-app")
	}

	src := m.Root.Children["src"]
	if src == nil || src.Kind != scaffold.KindDir {
		t.Fatalf("src = %+v, want directory node", src)
	}
	if got := src.Children["main.go"]; got == nil || got.Kind != scaffold.KindFile {
		t.Fatalf("src/main.go = %+v, want file node", got)
	}

	docs := m.Root.Children["docs"]
	if docs == nil || docs.Kind != scaffold.KindDir || len(docs.Children) != 0 {
		t.Fatalf("docs = %+v, want empty directory node", docs)
	}

	readme := m.Root.Children["README.md"]
	if readme == nil || readme.Kind != scaffold.KindFile || readme.Seed != "# my-app" {
		t.Fatalf("README.md = %+v, want file with seed", readme)
	}

	gitignore := m.Root.Children[".gitignore"]
	if gitignore == nil || gitignore.Kind != scaffold.KindFile || gitignore.Seed != "" {
		t.Fatalf(".gitignore = %+v, want empty file node", gitignore)
	}
}

func TestParse_EmptyFails(t *testing.T) {
	if _, err := Parse([]byte("  \n")); err == nil {
		t.Fatalf("Parse() error = nil, want non-nil")
	}
}

func TestParse_MultipleRootsFail(t *testing.T) {
	_, err := Parse([]byte("a: {}\nb: {}\n"))
	if err == nil {
		t.Fatalf("Parse() error = nil, want non-nil")
	}
	if !strings.Contains(err.Error(), "single-entry") {
		t.Fatalf("error = %q, want single-entry hint", err)
	}
}

func TestParse_ScalarRootFails(t *testing.T) {
	_, err := Parse([]byte(`my-app: ""` + "\n"))
	if err == nil {
		t.Fatalf("Parse() error = nil, want non-nil")
	}
	if !strings.Contains(err.Error(), "must be a mapping") {
		t.Fatalf("error = %q, want mapping hint", err)
	}
}

func TestParse_InvalidEntryNameFails(t *testing.T) {
	_, err := Parse([]byte(`
my-app:
  "a/b": ""
`))
	if err == nil {
		t.Fatalf("Parse() error = nil, want non-nil")
	}
	if !strings.Contains(err.Error(), "separators") {
		t.Fatalf("error = %q, want separator hint", err)
	}
}

func TestParse_UnsupportedValueTypeFails(t *testing.T) {
	_, err := Parse([]byte(`
my-app:
  count: 3
`))
	if err == nil {
		t.Fatalf("Parse() error = nil, want non-nil")
	}
	if !strings.Contains(err.Error(), "unsupported value type") {
		t.Fatalf("error = %q, want type hint", err)
	}
}

func TestLoad_MissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatalf("Load() error = nil, want non-nil")
	}
}

func TestLoad_RoundTripsThroughMaterializer(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.yaml")
	if err := os.WriteFile(path, []byte(`
demo:
  pkg:
    demo.go: ""
  go.mod: "module demo"
`), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	base := t.TempDir()
	tree := map[string]*scaffold.Node{m.Name: m.Root}
	if err := scaffold.Materialize(base, tree); err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}

	b, err := os.ReadFile(filepath.Join(base, "demo", "go.mod"))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(b) != "module demo" {
		t.Fatalf("go.mod = %q, want seed content", string(b))
	}
	if fi, err := os.Stat(filepath.Join(base, "demo", "pkg", "demo.go")); err != nil || fi.IsDir() {
		t.Fatalf("pkg/demo.go stat = (%v, %v), want plain file", fi, err)
	}
}
