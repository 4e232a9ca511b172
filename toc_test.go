package site2pdf

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFlattenOrder(t *testing.T) {
	t.Parallel()

	// root
	// ├── a
	// │   ├── a1
	// │   └── a2
	// │       └── a2x
	// └── b
	a1 := &TocNode{Title: "a1"}
	a2x := &TocNode{Title: "a2x"}
	a2 := &TocNode{Title: "a2", Children: []*TocNode{a2x}}
	a := &TocNode{Title: "a", Children: []*TocNode{a1, a2}}
	b := &TocNode{Title: "b"}
	root := &TocNode{Title: "root", Children: []*TocNode{a, b}}

	got := Flatten(root)

	want := []*TocNode{root, a, a1, a2, a2x, b}
	if len(got) != len(want) {
		t.Fatalf("Flatten returned %d nodes, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: got %q, want %q", i, got[i].Title, want[i].Title)
		}
	}
}

func TestFlattenSingleNode(t *testing.T) {
	t.Parallel()

	root := &TocNode{}
	got := Flatten(root)
	if len(got) != 1 || got[0] != root {
		t.Fatalf("Flatten of leaf root = %v, want just the root", got)
	}
}

func TestFlattenKeepsDuplicates(t *testing.T) {
	t.Parallel()

	// The same document under two parents stays two entries.
	first := &TocNode{Document: "shared.html"}
	second := &TocNode{Document: "shared.html"}
	root := &TocNode{Children: []*TocNode{first, second}}

	got := Flatten(root)
	if len(got) != 3 {
		t.Fatalf("Flatten returned %d nodes, want 3", len(got))
	}
}

func TestLoadTOC(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tocPath := filepath.Join(dir, "toc.yml")
	content := `baseUrl: https://docs.example.com
items:
  - title: Intro
    document: index.md
  - title: Guide
    items:
      - title: Install
        document: guide/install.md
`
	if err := os.WriteFile(tocPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	toc, err := LoadTOC(tocPath)
	if err != nil {
		t.Fatalf("LoadTOC: %v", err)
	}

	if toc.BaseURL != "https://docs.example.com" {
		t.Errorf("BaseURL = %q", toc.BaseURL)
	}
	if toc.Root.Document != "" {
		t.Errorf("root should carry no document, got %q", toc.Root.Document)
	}
	if len(toc.Root.Children) != 2 {
		t.Fatalf("root has %d children, want 2", len(toc.Root.Children))
	}
	if got := toc.Root.Children[1].Children[0].Document; got != "guide/install.md" {
		t.Errorf("nested document = %q", got)
	}
}

func TestLoadTOCErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	badPath := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(badPath, []byte("items: {not: [a, list"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{name: "empty path", path: "", wantErr: ErrEmptyTOCPath},
		{name: "missing file", path: filepath.Join(dir, "nope.yml"), wantErr: ErrTOCNotFound},
		{name: "malformed yaml", path: badPath, wantErr: ErrTOCParse},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := LoadTOC(tt.path)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadTOC(%q) error = %v, want %v", tt.path, err, tt.wantErr)
			}
		})
	}
}
