package site2pdf

import (
	"bytes"
	"fmt"
	"os"

	"github.com/alnah/go-site2pdf/internal/fileutil"
	"github.com/alnah/go-site2pdf/internal/htmlx"
)

// transformPage produces the merged-document fragment for one TOC node.
//
// Nodes without a document, and documents whose rendered HTML is absent or
// empty, contribute nothing and return ("", nil): a missing render is a
// defined non-error (redirect-only entries, unbuilt pages). A read failure on
// an existing file is fatal — it signals permissions or disk trouble, not a
// legitimately absent page.
func transformPage(node *TocNode, loc Locator, container string) (string, error) {
	if node.Document == "" {
		return "", nil
	}

	sitePath, err := loc.SitePath(node.Document)
	if err != nil {
		return "", err
	}

	htmlPath, err := loc.HTMLPath(node.Document)
	if err != nil {
		return "", err
	}

	if !fileutil.FileExists(htmlPath) {
		return "", nil
	}

	data, err := os.ReadFile(htmlPath) // #nosec G304 -- path derived from site layout
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrReadPage, node.Document, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return "", nil
	}

	rw := newPageRewriter(sitePath, container, loc.CanonicalURL)
	out, err := htmlx.Transform(string(data), rw.rewriteTag)
	if err != nil {
		return "", fmt.Errorf("transforming %s: %w", node.Document, err)
	}

	return out, nil
}
