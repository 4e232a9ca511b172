package htmlx

import (
	"net/url"
	"strings"
)

// Kind classifies a link attribute's URL value.
type Kind int

const (
	// KindOther covers empty values and anything unparseable; never rewritten.
	KindOther Kind = iota

	// KindExternal is an absolute URL with a scheme or host (https://...,
	// mailto:, data:, protocol-relative //host/...); never rewritten.
	KindExternal

	// KindRelative is a same-site path, relative or root-relative.
	KindRelative

	// KindBookmark is a fragment-only reference (#section) into the same page.
	KindBookmark
)

// Link is the decomposition of a link attribute's URL value.
type Link struct {
	Kind     Kind
	Path     string // unresolved path, as written (empty for bookmarks)
	Query    string // raw query string, without the leading ?
	Fragment string // fragment, without the leading #
}

// linkAttrs maps element names to their navigation attribute. Resource
// attributes (img src, script src, link href) are deliberately absent:
// merging retargets hyperlinks, not asset references.
var linkAttrs = map[string]string{
	"a":    "href",
	"area": "href",
}

// IsLinkAttr reports whether attr on the named tag carries a navigable URL.
func IsLinkAttr(tag, attr string) bool {
	return linkAttrs[tag] == attr
}

// Classify decomposes a link attribute value into kind, path, query, and
// fragment. Unparseable values classify as KindOther and are left alone.
func Classify(raw string) Link {
	if raw == "" {
		return Link{Kind: KindOther}
	}

	// Protocol-relative URLs carry a host but no scheme.
	if strings.HasPrefix(raw, "//") {
		return Link{Kind: KindExternal}
	}

	u, err := url.Parse(raw)
	if err != nil {
		return Link{Kind: KindOther}
	}

	if u.Scheme != "" || u.Host != "" {
		return Link{Kind: KindExternal}
	}

	if u.Path == "" {
		if u.Fragment != "" {
			return Link{Kind: KindBookmark, Fragment: u.Fragment}
		}
		return Link{Kind: KindOther}
	}

	return Link{
		Kind:     KindRelative,
		Path:     u.Path,
		Query:    u.RawQuery,
		Fragment: u.Fragment,
	}
}
