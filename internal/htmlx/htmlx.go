// Package htmlx is the HTML transform engine used by the merge pipeline.
// It parses an HTML document or fragment, invokes a callback for every
// element start tag, and re-serializes the (possibly mutated) tree.
package htmlx

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// TagFunc is invoked once per element start tag during Transform.
// The callback may inspect and mutate the tag's attributes through t.
type TagFunc func(t *Tag)

// Tag is a mutable view of one element start tag.
type Tag struct {
	n *html.Node
}

// Attr is one attribute of a tag, as seen by TagFunc callbacks.
type Attr struct {
	Key string
	Val string
}

// Name returns the lowercase element name ("a", "main", "img", ...).
func (t *Tag) Name() string {
	return t.n.Data
}

// Attr returns the value of the named attribute and whether it is present.
func (t *Tag) Attr(name string) (string, bool) {
	for _, a := range t.n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr replaces the named attribute's value, adding the attribute if absent.
func (t *Tag) SetAttr(name, value string) {
	for i, a := range t.n.Attr {
		if a.Key == name {
			t.n.Attr[i].Val = value
			return
		}
	}
	t.n.Attr = append(t.n.Attr, html.Attribute{Key: name, Val: value})
}

// Attrs returns a snapshot of the tag's attributes in document order.
// Mutations made through SetAttr after the snapshot are not reflected.
func (t *Tag) Attrs() []Attr {
	out := make([]Attr, len(t.n.Attr))
	for i, a := range t.n.Attr {
		out[i] = Attr{Key: a.Key, Val: a.Val}
	}
	return out
}

// Transform parses htmlContent, calls fn for every element start tag, and
// renders the result back to a string. Both full documents and fragments are
// accepted; fragments are re-serialized without a <html><body> wrapper.
func Transform(htmlContent string, fn TagFunc) (string, error) {
	doc, isFragment, err := parse(htmlContent)
	if err != nil {
		return "", err
	}

	walk(doc, fn)

	return render(doc, isFragment)
}

// parse handles both full documents and fragments.
// Returns the parsed node, whether it was a fragment, and any error.
func parse(content string) (*html.Node, bool, error) {
	trimmed := strings.TrimSpace(content)

	// Full document: starts with <!DOCTYPE or <html
	if strings.HasPrefix(strings.ToLower(trimmed), "<!doctype") ||
		strings.HasPrefix(strings.ToLower(trimmed), "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		return doc, false, err
	}

	// Fragment: parse with body context to avoid wrapping
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, true, err
	}

	// Wrap nodes in a container for uniform traversal
	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}

	return container, true, nil
}

// render serializes the tree back to a string.
// For fragments, only the children are rendered (no added wrapper).
func render(doc *html.Node, isFragment bool) (string, error) {
	var buf strings.Builder

	if isFragment {
		for c := doc.FirstChild; c != nil; c = c.NextSibling {
			if err := html.Render(&buf, c); err != nil {
				return "", err
			}
		}
		return buf.String(), nil
	}

	if err := html.Render(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// walk traverses the tree and invokes fn on every element node.
func walk(n *html.Node, fn TagFunc) {
	if n.Type == html.ElementNode {
		fn(&Tag{n: n})
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}
