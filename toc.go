package site2pdf

import (
	"fmt"
	"os"

	"github.com/alnah/go-site2pdf/internal/yamlutil"
)

// TocNode is one entry in a table of contents tree. A node may reference a
// source document, group child entries, or both. Child order is merge order.
type TocNode struct {
	Title    string     `yaml:"title,omitempty"`
	Document string     `yaml:"document,omitempty"`
	Children []*TocNode `yaml:"items,omitempty"`
}

// TOC is a loaded table of contents. Root is a synthetic grouping node whose
// children are the file's top-level items; it carries no document.
type TOC struct {
	BaseURL string
	Root    *TocNode
}

// tocFile is the on-disk YAML schema.
type tocFile struct {
	BaseURL string     `yaml:"baseUrl,omitempty"`
	Items   []*TocNode `yaml:"items"`
}

// LoadTOC reads and parses a YAML table of contents.
func LoadTOC(path string) (*TOC, error) {
	if path == "" {
		return nil, ErrEmptyTOCPath
	}

	data, err := os.ReadFile(path) // #nosec G304 -- toc path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrTOCNotFound, path)
		}
		return nil, fmt.Errorf("reading toc file: %w", err)
	}

	var f tocFile
	if err := yamlutil.UnmarshalStrict(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTOCParse, path, err)
	}

	return &TOC{
		BaseURL: f.BaseURL,
		Root:    &TocNode{Children: f.Items},
	}, nil
}

// Flatten returns the tree's nodes in depth-first pre-order: a node first,
// then each of its children in order, before the next sibling. The root is
// always the first element. Nodes are neither skipped nor deduplicated; the
// result order fully determines merge order.
func Flatten(root *TocNode) []*TocNode {
	nodes := []*TocNode{root}
	for _, child := range root.Children {
		nodes = append(nodes, Flatten(child)...)
	}
	return nodes
}
