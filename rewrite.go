package site2pdf

import (
	"path"
	"strings"

	"github.com/alnah/go-site2pdf/internal/htmlx"
)

// defaultContainerTag is the element that receives the page's own identifier.
// Other pages' links land on this anchor after merging.
const defaultContainerTag = "main"

// pageRewriter rewrites one page's start tags for inclusion in the merged
// document. It is bound per page to the page's identifier and site path; the
// canonical function is pure, so rewriters run concurrently without sharing
// mutable state.
type pageRewriter struct {
	id        string
	sitePath  string
	dir       string
	container string
	canonical func(sitePath string) string
	tagged    bool
}

func newPageRewriter(sitePath, container string, canonical func(string) string) *pageRewriter {
	if container == "" {
		container = defaultContainerTag
	}
	return &pageRewriter{
		id:        Identify(canonical(sitePath)),
		sitePath:  sitePath,
		dir:       path.Dir(sitePath),
		container: container,
		canonical: canonical,
	}
}

// rewriteTag is the per-start-tag callback handed to the HTML transform
// engine. Three rules apply, in order:
//
//  1. The first occurrence of the container tag gets id=<own identifier>,
//     unprefixed. This is the anchor other pages link to.
//  2. Any other id attribute is prefixed with the page identifier, so local
//     anchor names ("footnote-1") stay unique across merged pages.
//  3. Same-site links and same-page bookmarks are retargeted to
//     #<target identifier><fragment>. External and absolute URLs pass through.
func (r *pageRewriter) rewriteTag(t *htmlx.Tag) {
	if !r.tagged && t.Name() == r.container {
		t.SetAttr("id", r.id)
		r.tagged = true
	} else if v, ok := t.Attr("id"); ok {
		t.SetAttr("id", r.id+v)
	}

	for _, a := range t.Attrs() {
		if !htmlx.IsLinkAttr(t.Name(), a.Key) {
			continue
		}

		link := htmlx.Classify(a.Val)

		var target string
		switch link.Kind {
		case htmlx.KindBookmark:
			// A bare fragment points into the page it appears on.
			target = r.sitePath
		case htmlx.KindRelative:
			target = resolveSitePath(r.dir, link.Path)
		default:
			continue
		}

		// Query strings do not survive the merge: the target is an anchor in
		// the same DOM, not a request.
		t.SetAttr(a.Key, joinFragment(Identify(r.canonical(target)), link.Fragment))
	}
}

// resolveSitePath resolves a link path against the linking page's directory,
// yielding an absolute site-relative path. Root-relative links resolve
// against the site root. Always slash-separated.
func resolveSitePath(dir, p string) string {
	if path.IsAbs(p) {
		return strings.TrimPrefix(path.Clean(p), "/")
	}
	if dir == "." || dir == "" {
		return path.Clean(p)
	}
	return path.Clean(path.Join(dir, p))
}

// joinFragment composes the merged-document anchor value: the target
// identifier, then the original fragment re-attached with exactly one '#'.
func joinFragment(id, fragment string) string {
	fragment = strings.TrimPrefix(fragment, "#")
	if fragment == "" {
		return "#" + id
	}
	return "#" + id + "#" + fragment
}
