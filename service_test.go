package site2pdf

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func quietService(opts ...Option) *Service {
	return New(append([]Option{WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))}, opts...)...)
}

func TestPdfSourcePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		tocPath   string
		outputDir string
		want      string
	}{
		{
			name:    "alongside toc",
			tocPath: filepath.Join("docs", "toc.yml"),
			want:    filepath.Join("docs", "toc.pdf.html"),
		},
		{
			name:      "redirected output",
			tocPath:   filepath.Join("docs", "api.yaml"),
			outputDir: "out",
			want:      filepath.Join("out", "api.pdf.html"),
		},
		{
			name:    "no extension",
			tocPath: "toc",
			want:    "toc.pdf.html",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := pdfSourcePath(tt.tocPath, tt.outputDir); got != tt.want {
				t.Errorf("pdfSourcePath(%q, %q) = %q, want %q", tt.tocPath, tt.outputDir, got, tt.want)
			}
		})
	}
}

func TestBuildValidation(t *testing.T) {
	t.Parallel()

	svc := quietService()
	t.Cleanup(func() { _ = svc.Close() })

	tests := []struct {
		name    string
		input   Input
		wantErr error
	}{
		{name: "empty toc path", input: Input{Site: &Site{}}, wantErr: ErrEmptyTOCPath},
		{name: "nil site", input: Input{TOCPath: "toc.yml"}, wantErr: ErrNilSite},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.Build(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Build error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBuildRequiresBaseURL(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tocPath := filepath.Join(dir, "toc.yml")
	if err := os.WriteFile(tocPath, []byte("items:\n  - document: a.html\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	svc := quietService()
	t.Cleanup(func() { _ = svc.Close() })

	_, err := svc.Build(context.Background(), Input{TOCPath: tocPath, Site: &Site{RenderDir: dir}})
	if !errors.Is(err, ErrEmptyBaseURL) {
		t.Errorf("Build error = %v, want %v", err, ErrEmptyBaseURL)
	}
}

func TestBuildMergesRenderedPages(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	render := filepath.Join(dir, "public")
	out := filepath.Join(dir, "out")

	pages := map[string]string{
		"index.html":         `<main><a href="guide/install.html">install</a></main>`,
		"guide/install.html": `<main><h1 id="top">Install</h1></main>`,
	}
	for name, content := range pages {
		p := filepath.Join(render, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o750); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	tocPath := filepath.Join(dir, "manual.yml")
	toc := `baseUrl: https://docs.example.com
items:
  - title: Home
    document: index.md
  - title: Guide
    items:
      - title: Install
        document: guide/install.md
      - title: Missing
        document: guide/missing.md
`
	if err := os.WriteFile(tocPath, []byte(toc), 0o644); err != nil {
		t.Fatal(err)
	}

	svc := quietService()
	t.Cleanup(func() { _ = svc.Close() })

	result, err := svc.Build(context.Background(), Input{
		TOCPath:   tocPath,
		Site:      &Site{RenderDir: render},
		OutputDir: out,
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if want := filepath.Join(out, "manual.pdf.html"); result.HTMLPath != want {
		t.Errorf("HTMLPath = %q, want %q", result.HTMLPath, want)
	}
	if result.Pages != 2 {
		t.Errorf("Pages = %d, want 2 (missing page skipped)", result.Pages)
	}
	if result.PDFPath != "" {
		t.Errorf("PDFPath = %q without PDF requested", result.PDFPath)
	}

	data, err := os.ReadFile(result.HTMLPath)
	if err != nil {
		t.Fatal(err)
	}
	merged := string(data)

	installID := Identify("https://docs.example.com/guide/install.html")
	if !strings.Contains(merged, `href="#`+installID+`"`) {
		t.Errorf("merged output missing retargeted link: %q", merged)
	}

	// Home page precedes the guide page, matching toc order.
	homeID := Identify("https://docs.example.com/index.html")
	if strings.Index(merged, homeID) > strings.Index(merged, `<main id="`+installID+`"`) {
		t.Error("merged pages out of toc order")
	}
}

func TestBuildRendersMarkdownSources(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	source := filepath.Join(dir, "docs")
	render := filepath.Join(dir, "public")

	if err := os.MkdirAll(source, 0o750); err != nil {
		t.Fatal(err)
	}
	md := "# Welcome\n\nSome *content*.\n"
	if err := os.WriteFile(filepath.Join(source, "index.md"), []byte(md), 0o644); err != nil {
		t.Fatal(err)
	}

	tocPath := filepath.Join(dir, "toc.yml")
	toc := `baseUrl: https://docs.example.com
items:
  - title: Welcome
    document: index.md
`
	if err := os.WriteFile(tocPath, []byte(toc), 0o644); err != nil {
		t.Fatal(err)
	}

	svc := quietService()
	t.Cleanup(func() { _ = svc.Close() })

	result, err := svc.Build(context.Background(), Input{
		TOCPath: tocPath,
		Site:    &Site{SourceDir: source, RenderDir: render},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if result.Pages != 1 {
		t.Fatalf("Pages = %d, want 1", result.Pages)
	}

	// The markdown source was rendered into the render dir on the way.
	if _, err := os.Stat(filepath.Join(render, "index.html")); err != nil {
		t.Errorf("rendered page not written: %v", err)
	}

	data, err := os.ReadFile(result.HTMLPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Welcome") {
		t.Errorf("merged output missing rendered content: %q", data)
	}
}

func TestBuildFailsOnBadReference(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tocPath := filepath.Join(dir, "toc.yml")
	toc := `baseUrl: https://docs.example.com
items:
  - document: ../../outside.html
`
	if err := os.WriteFile(tocPath, []byte(toc), 0o644); err != nil {
		t.Fatal(err)
	}

	svc := quietService()
	t.Cleanup(func() { _ = svc.Close() })

	_, err := svc.Build(context.Background(), Input{TOCPath: tocPath, Site: &Site{RenderDir: dir}})
	if !errors.Is(err, ErrUnknownDocument) {
		t.Errorf("Build error = %v, want %v", err, ErrUnknownDocument)
	}
}
