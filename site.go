package site2pdf

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// Locator resolves a TOC document reference to the three things the merge
// needs: the rendered HTML file on disk, the site-relative path used for link
// resolution, and the canonical URL used for identifier derivation.
type Locator interface {
	HTMLPath(doc string) (string, error)
	SitePath(doc string) (string, error)
	CanonicalURL(sitePath string) string
}

// Site is the concrete locator for a documentation site laid out on disk.
// Document references are site-relative source paths ("guide/install.md");
// their rendered pages live under RenderDir at the same path with an .html
// extension, and are served under BaseURL at that path.
type Site struct {
	SourceDir string // markdown sources, optional (only needed for rendering)
	RenderDir string // rendered HTML pages
	BaseURL   string // canonical site base, e.g. https://docs.example.com
}

// Compile-time check that Site implements Locator.
var _ Locator = (*Site)(nil)

// SitePath maps a document reference to its site-relative HTML path.
// References that escape the site root are rejected.
func (s *Site) SitePath(doc string) (string, error) {
	if doc == "" {
		return "", fmt.Errorf("%w: empty reference", ErrUnknownDocument)
	}

	clean := path.Clean(filepath.ToSlash(doc))
	if path.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", fmt.Errorf("%w: %s", ErrUnknownDocument, doc)
	}

	switch path.Ext(clean) {
	case ".md", ".markdown":
		clean = strings.TrimSuffix(clean, path.Ext(clean)) + ".html"
	}

	return clean, nil
}

// HTMLPath returns the on-disk location of the document's rendered page.
func (s *Site) HTMLPath(doc string) (string, error) {
	sitePath, err := s.SitePath(doc)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.RenderDir, filepath.FromSlash(sitePath)), nil
}

// sourcePath returns the on-disk location of the document's markdown source.
func (s *Site) sourcePath(doc string) string {
	return filepath.Join(s.SourceDir, filepath.FromSlash(filepath.ToSlash(doc)))
}

// CanonicalURL returns the served URL for a site-relative path. It is the
// stable key from which page identifiers are derived, so every page computes
// the same URL string for a given target.
func (s *Site) CanonicalURL(sitePath string) string {
	return strings.TrimSuffix(s.BaseURL, "/") + "/" + sitePath
}
