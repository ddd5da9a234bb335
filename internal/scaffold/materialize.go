package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

const (
	defaultDirMode  os.FileMode = 0o755
	defaultFileMode os.FileMode = 0o644
)

// ConflictError reports an existing filesystem entry whose kind does not
// match what the scaffold tree requires at that path. Have is the mode of
// the entry actually found there.
type ConflictError struct {
	Path string
	Want Kind
	Have os.FileMode
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict at %s: %s already exists where a %s is required", e.Path, describeMode(e.Have), e.Want)
}

func describeMode(m os.FileMode) string {
	switch {
	case m.IsDir():
		return "directory"
	case m&os.ModeSymlink != 0:
		return "symlink"
	case m.IsRegular():
		return "file"
	default:
		return "non-regular entry"
	}
}

// Result counts what a materialization run actually created. Entries that
// already existed are not counted.
type Result struct {
	DirsCreated  int
	FilesCreated int
}

// Materializer walks a scaffold tree and creates the missing directories and
// files under a base path. The zero value uses 0755/0644 modes.
//
// Materialization is single-threaded and strictly sequential; concurrent runs
// against overlapping base paths must be serialized by the caller.
type Materializer struct {
	DirMode  os.FileMode
	FileMode os.FileMode
}

// Materialize ensures every directory and file implied by children exists
// under base, creating only what is missing. base must already exist.
//
// Each subtree is fully materialized (directory created, then descended into)
// before the next sibling begins, so a child path is never touched before its
// parent directory exists. Siblings are visited in sorted name order.
//
// The first failure aborts the walk immediately; entries created before the
// failure are left on disk.
func (m Materializer) Materialize(base string, children map[string]*Node) (Result, error) {
	var res Result
	if err := m.walk(base, children, &res); err != nil {
		return res, err
	}
	return res, nil
}

func (m Materializer) walk(base string, children map[string]*Node, res *Result) error {
	names := make([]string, 0, len(children))
	for name := range children {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := ValidateName(name); err != nil {
			return fmt.Errorf("invalid entry under %s: %w", base, err)
		}
		node := children[name]
		target := filepath.Join(base, name)

		switch node.Kind {
		case KindDir:
			created, err := m.ensureDir(target)
			if err != nil {
				return err
			}
			if created {
				res.DirsCreated++
			}
			if err := m.walk(target, node.Children, res); err != nil {
				return err
			}
		case KindFile:
			created, err := m.ensureFile(target, node.Seed)
			if err != nil {
				return err
			}
			if created {
				res.FilesCreated++
			}
		default:
			return fmt.Errorf("unknown node kind at %s: %v", target, node.Kind)
		}
	}
	return nil
}

// ensureDir makes target a directory if nothing exists there yet. An
// existing directory satisfies it; an existing non-directory is a conflict.
func (m Materializer) ensureDir(target string) (bool, error) {
	info, err := os.Lstat(target)
	switch {
	case err == nil && info.IsDir():
		return false, nil
	case err == nil:
		return false, &ConflictError{Path: target, Want: KindDir, Have: info.Mode()}
	case os.IsNotExist(err):
		if err := os.MkdirAll(target, m.dirMode()); err != nil {
			return false, fmt.Errorf("mkdir %s: %w", target, err)
		}
		return true, nil
	default:
		return false, fmt.Errorf("stat %s: %w", target, err)
	}
}

// ensureFile creates target as a file with the given seed content if nothing
// exists there yet. An existing file is left untouched, whatever its content.
func (m Materializer) ensureFile(target string, seed string) (bool, error) {
	info, err := os.Lstat(target)
	switch {
	case err == nil && info.IsDir():
		return false, &ConflictError{Path: target, Want: KindFile, Have: info.Mode()}
	case err == nil:
		return false, nil
	case os.IsNotExist(err):
		f, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_EXCL, m.fileMode())
		if err != nil {
			return false, fmt.Errorf("create %s: %w", target, err)
		}
		if seed != "" {
			if _, werr := f.WriteString(seed); werr != nil {
				_ = f.Close()
				return false, fmt.Errorf("write %s: %w", target, werr)
			}
		}
		if err := f.Close(); err != nil {
			return false, fmt.Errorf("close %s: %w", target, err)
		}
		return true, nil
	default:
		return false, fmt.Errorf("stat %s: %w", target, err)
	}
}

func (m Materializer) dirMode() os.FileMode {
	if m.DirMode == 0 {
		return defaultDirMode
	}
	return m.DirMode
}

func (m Materializer) fileMode() os.FileMode {
	if m.FileMode == 0 {
		return defaultFileMode
	}
	return m.FileMode
}

// Materialize runs a zero-value Materializer, discarding creation counts.
func Materialize(base string, children map[string]*Node) error {
	_, err := Materializer{}.Materialize(base, children)
	return err
}
