package scaffold

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Kind discriminates the two node variants of a scaffold tree.
type Kind int

const (
	KindDir Kind = iota
	KindFile
)

func (k Kind) String() string {
	switch k {
	case KindDir:
		return "directory"
	case KindFile:
		return "file"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Node is one element of a scaffold tree: a directory bearing children or a
// file bearing optional seed content. The tree is immutable input data; the
// materializer never mutates it.
type Node struct {
	Kind     Kind
	Children map[string]*Node // directories only
	Seed     string           // files only; written once at creation
}

// Dir builds a directory node. A nil children map is an empty directory.
func Dir(children map[string]*Node) *Node {
	return &Node{Kind: KindDir, Children: children}
}

// File builds a file node with optional seed content.
func File(seed string) *Node {
	return &Node{Kind: KindFile, Seed: seed}
}

// Count returns the number of directory and file nodes in the subtree,
// excluding the node itself.
func (n *Node) Count() (dirs int, files int) {
	if n == nil || n.Kind != KindDir {
		return 0, 0
	}
	for _, child := range n.Children {
		switch child.Kind {
		case KindDir:
			dirs++
			d, f := child.Count()
			dirs += d
			files += f
		case KindFile:
			files++
		}
	}
	return dirs, files
}

// ValidateName checks that name is a single path segment: non-empty, not
// "." or "..", no separators, not absolute.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("empty name")
	}
	if name == "." || name == ".." {
		return fmt.Errorf("invalid name: %q", name)
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("name must not contain path separators: %q", name)
	}
	if filepath.IsAbs(name) {
		return fmt.Errorf("absolute paths are not allowed: %q", name)
	}
	return nil
}
