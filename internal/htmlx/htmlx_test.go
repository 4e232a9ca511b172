package htmlx

import (
	"strings"
	"testing"
)

func TestTransformMutatesAttributes(t *testing.T) {
	t.Parallel()

	out, err := Transform(`<a href="old.html" id="x">link</a>`, func(tag *Tag) {
		if v, ok := tag.Attr("href"); ok && v == "old.html" {
			tag.SetAttr("href", "#new")
		}
		tag.SetAttr("data-seen", "1")
	})
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{`href="#new"`, `id="x"`, `data-seen="1"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %q", out, want)
		}
	}
}

func TestTransformFragmentKeepsShape(t *testing.T) {
	t.Parallel()

	// Fragments must not grow an <html><body> wrapper.
	in := `<p>one</p><p>two</p>`
	out, err := Transform(in, func(*Tag) {})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "<html") || strings.Contains(out, "<body") {
		t.Errorf("fragment gained a document wrapper: %q", out)
	}
	if out != in {
		t.Errorf("no-op transform changed fragment: %q", out)
	}
}

func TestTransformFullDocument(t *testing.T) {
	t.Parallel()

	in := `<!DOCTYPE html><html><head><title>t</title></head><body><main>hi</main></body></html>`

	var names []string
	out, err := Transform(in, func(tag *Tag) {
		names = append(names, tag.Name())
	})
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(out, "<!DOCTYPE html>") && !strings.Contains(out, "<!doctype html>") {
		t.Errorf("doctype lost: %q", out)
	}

	joined := strings.Join(names, " ")
	for _, want := range []string{"html", "head", "title", "body", "main"} {
		if !strings.Contains(joined, want) {
			t.Errorf("callback never saw %q (saw: %s)", want, joined)
		}
	}
}

func TestTagAttrs(t *testing.T) {
	t.Parallel()

	_, err := Transform(`<a href="x" id="y">l</a>`, func(tag *Tag) {
		if tag.Name() != "a" {
			return
		}
		attrs := tag.Attrs()
		if len(attrs) != 2 {
			t.Errorf("Attrs() returned %d entries, want 2", len(attrs))
			return
		}
		if attrs[0].Key != "href" || attrs[0].Val != "x" {
			t.Errorf("first attr = %+v", attrs[0])
		}
		if attrs[1].Key != "id" || attrs[1].Val != "y" {
			t.Errorf("second attr = %+v", attrs[1])
		}
	})
	if err != nil {
		t.Fatal(err)
	}
}
