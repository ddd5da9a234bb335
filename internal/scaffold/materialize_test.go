package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func sampleTree() map[string]*Node {
	return map[string]*Node{
		"root": Dir(map[string]*Node{
			"a": Dir(map[string]*Node{
				"x.txt": File(""),
			}),
			"b.txt": File(""),
		}),
	}
}

func TestMaterialize_CreatesDirsAndEmptyFiles(t *testing.T) {
	base := t.TempDir()

	res, err := Materializer{}.Materialize(base, sampleTree())
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}
	if res.DirsCreated != 2 || res.FilesCreated != 2 {
		t.Fatalf("Materialize() result = %+v, want 2 dirs and 2 files", res)
	}

	mustBeDir(t, filepath.Join(base, "root"))
	mustBeDir(t, filepath.Join(base, "root", "a"))
	mustBeEmptyFile(t, filepath.Join(base, "root", "a", "x.txt"))
	mustBeEmptyFile(t, filepath.Join(base, "root", "b.txt"))
}

func TestMaterialize_SecondRunIsNoop(t *testing.T) {
	base := t.TempDir()

	if err := Materialize(base, sampleTree()); err != nil {
		t.Fatalf("first Materialize() error = %v", err)
	}
	res, err := Materializer{}.Materialize(base, sampleTree())
	if err != nil {
		t.Fatalf("second Materialize() error = %v", err)
	}
	if res.DirsCreated != 0 || res.FilesCreated != 0 {
		t.Fatalf("second run result = %+v, want nothing created", res)
	}
	mustBeEmptyFile(t, filepath.Join(base, "root", "a", "x.txt"))
}

func TestMaterialize_EmptyDirectoryNode(t *testing.T) {
	base := t.TempDir()

	if err := Materialize(base, map[string]*Node{"d": Dir(nil)}); err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}
	mustBeDir(t, filepath.Join(base, "d"))

	entries, err := os.ReadDir(filepath.Join(base, "d"))
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("d has %d entries, want empty", len(entries))
	}
}

func TestMaterialize_ExistingFileLeftUntouched(t *testing.T) {
	base := t.TempDir()
	mustMkdirAll(t, filepath.Join(base, "root"))
	existing := filepath.Join(base, "root", "b.txt")
	if err := os.WriteFile(existing, []byte("keep me"), 0o644); err != nil {
		t.Fatalf("write existing file: %v", err)
	}

	if err := Materialize(base, sampleTree()); err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}

	b, err := os.ReadFile(existing)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(b) != "keep me" {
		t.Fatalf("existing file content = %q, want %q", string(b), "keep me")
	}
}

func TestMaterialize_SeedContentWrittenOnCreate(t *testing.T) {
	base := t.TempDir()

	tree := map[string]*Node{
		"README.md": File("# hello\n"),
	}
	if err := Materialize(base, tree); err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}

	b, err := os.ReadFile(filepath.Join(base, "README.md"))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(b) != "# hello\n" {
		t.Fatalf("seeded content = %q, want %q", string(b), "# hello\n")
	}
}

func TestMaterialize_FileWhereDirRequired(t *testing.T) {
	base := t.TempDir()
	if err := os.WriteFile(filepath.Join(base, "root"), nil, 0o644); err != nil {
		t.Fatalf("write blocking file: %v", err)
	}

	err := Materialize(base, sampleTree())
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("Materialize() error = %v, want *ConflictError", err)
	}
	if conflict.Path != filepath.Join(base, "root") {
		t.Fatalf("conflict path = %q, want %q", conflict.Path, filepath.Join(base, "root"))
	}
	if conflict.Want != KindDir {
		t.Fatalf("conflict want = %v, want %v", conflict.Want, KindDir)
	}
}

func TestMaterialize_DirWhereFileRequired(t *testing.T) {
	base := t.TempDir()
	mustMkdirAll(t, filepath.Join(base, "root", "b.txt"))

	err := Materialize(base, sampleTree())
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("Materialize() error = %v, want *ConflictError", err)
	}
	if conflict.Want != KindFile {
		t.Fatalf("conflict want = %v, want %v", conflict.Want, KindFile)
	}
}

func TestMaterialize_SymlinkConflictReportsSymlink(t *testing.T) {
	base := t.TempDir()
	if err := os.Symlink(filepath.Join(base, "elsewhere"), filepath.Join(base, "root")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	err := Materialize(base, sampleTree())
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("Materialize() error = %v, want *ConflictError", err)
	}
	if conflict.Have&os.ModeSymlink == 0 {
		t.Fatalf("conflict have = %v, want symlink mode", conflict.Have)
	}
	if !strings.Contains(err.Error(), "symlink") {
		t.Fatalf("error = %q, want the existing entry described as a symlink", err)
	}
}

func TestMaterialize_EarlierSiblingsSurviveFailure(t *testing.T) {
	base := t.TempDir()

	// "m.txt" blocks as a directory; sorted order guarantees "a" and
	// "b.txt" are materialized first and "z" is never reached.
	mustMkdirAll(t, filepath.Join(base, "m.txt"))
	tree := map[string]*Node{
		"a":     Dir(map[string]*Node{"x.txt": File("")}),
		"b.txt": File(""),
		"m.txt": File(""),
		"z":     Dir(nil),
	}

	err := Materialize(base, tree)
	if err == nil {
		t.Fatalf("Materialize() error = nil, want conflict")
	}

	mustBeDir(t, filepath.Join(base, "a"))
	mustBeEmptyFile(t, filepath.Join(base, "a", "x.txt"))
	mustBeEmptyFile(t, filepath.Join(base, "b.txt"))
	if _, statErr := os.Lstat(filepath.Join(base, "z")); !os.IsNotExist(statErr) {
		t.Fatalf("z exists after aborted walk, want untouched")
	}
}

func TestMaterialize_RejectsInvalidNames(t *testing.T) {
	base := t.TempDir()

	for _, name := range []string{"", ".", "..", "a/b", `a\b`} {
		err := Materialize(base, map[string]*Node{name: File("")})
		if err == nil {
			t.Fatalf("Materialize() with name %q error = nil, want non-nil", name)
		}
	}
}

func TestMaterialize_CustomModes(t *testing.T) {
	base := t.TempDir()

	m := Materializer{DirMode: 0o700, FileMode: 0o600}
	if _, err := m.Materialize(base, sampleTree()); err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}

	fi, err := os.Stat(filepath.Join(base, "root"))
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if got := fi.Mode().Perm(); got != 0o700 {
		t.Fatalf("dir mode = %v, want %v", got, os.FileMode(0o700))
	}
	fi, err = os.Stat(filepath.Join(base, "root", "b.txt"))
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if got := fi.Mode().Perm(); got != 0o600 {
		t.Fatalf("file mode = %v, want %v", got, os.FileMode(0o600))
	}
}

func mustBeDir(t *testing.T, path string) {
	t.Helper()
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat(%q) error = %v", path, err)
	}
	if !fi.IsDir() {
		t.Fatalf("%q is not a directory", path)
	}
}

func mustBeEmptyFile(t *testing.T, path string) {
	t.Helper()
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat(%q) error = %v", path, err)
	}
	if fi.IsDir() {
		t.Fatalf("%q is a directory, want file", path)
	}
	if fi.Size() != 0 {
		t.Fatalf("%q size = %d, want 0", path, fi.Size())
	}
}

func mustMkdirAll(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("MkdirAll(%q): %v", path, err)
	}
}
