package site2pdf

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/alnah/go-site2pdf/internal/fileutil"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Service orchestrates the toc-to-pdf-source pipeline: load the TOC, render
// markdown sources that have no page yet, merge all pages into one HTML
// document, and optionally render that document to PDF.
type Service struct {
	cfg      serviceConfig
	renderer *pageRenderer
	pdf      pdfRenderer
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithWorkers).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			timeout:   defaultTimeout,
			container: defaultContainerTag,
		},
		renderer: newPageRenderer(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.cfg.workers < 1 {
		s.cfg.workers = runtime.GOMAXPROCS(0)
	}
	if s.cfg.logger == nil {
		s.cfg.logger = slog.Default()
	}

	// Create PDF renderer if not injected (e.g., by tests)
	if s.pdf == nil {
		s.pdf = newRodRenderer(s.cfg.timeout)
	}

	return s
}

// Build merges the TOC's pages into a single PDF-source HTML document and,
// when requested, renders it to PDF. The context is used for cancellation.
func (s *Service) Build(ctx context.Context, input Input) (*Result, error) {
	if input.TOCPath == "" {
		return nil, ErrEmptyTOCPath
	}
	if input.Site == nil {
		return nil, ErrNilSite
	}

	toc, err := LoadTOC(input.TOCPath)
	if err != nil {
		return nil, err
	}

	// Bind a per-build copy so TOC-level defaults don't leak into the caller's Site.
	site := *input.Site
	if site.BaseURL == "" {
		site.BaseURL = toc.BaseURL
	}
	if site.BaseURL == "" {
		return nil, ErrEmptyBaseURL
	}
	if site.RenderDir == "" {
		site.RenderDir = filepath.Dir(input.TOCPath)
	}

	nodes := Flatten(toc.Root)
	if err := s.renderMissingPages(ctx, &site, nodes); err != nil {
		return nil, err
	}

	htmlPath := pdfSourcePath(input.TOCPath, input.OutputDir)
	if err := os.MkdirAll(filepath.Dir(htmlPath), dirPermissions); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(htmlPath) // #nosec G304 -- output path derived from toc path
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	merger := NewMerger(&site,
		WithMergeWorkers(s.cfg.workers),
		WithContainer(s.cfg.container),
		WithMergeLogger(s.cfg.logger),
	)

	pages, err := merger.Merge(ctx, toc.Root, f)
	if err != nil {
		_ = f.Close()
		_ = os.Remove(htmlPath)
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	s.cfg.logger.Info("merged toc", "toc", input.TOCPath, "pages", pages, "output", htmlPath)

	result := &Result{HTMLPath: htmlPath, Pages: pages}

	if input.PDF {
		absHTML, err := filepath.Abs(htmlPath)
		if err != nil {
			return nil, fmt.Errorf("resolving output path: %w", err)
		}

		pdfBytes, err := s.pdf.RenderFromFile(ctx, absHTML, &pdfOptions{PageNumbers: s.cfg.pageNumbers})
		if err != nil {
			return nil, err
		}

		pdfPath := strings.TrimSuffix(htmlPath, ".html")
		// #nosec G306 -- PDFs are meant to be readable
		if err := os.WriteFile(pdfPath, pdfBytes, filePermissions); err != nil {
			return nil, fmt.Errorf("writing PDF: %w", err)
		}
		result.PDFPath = pdfPath
	}

	return result, nil
}

// RenderPDF renders already-merged HTML content to PDF bytes using headless
// Chrome. Useful when the merged document is produced elsewhere (e.g. an
// in-memory Merger run) and only the PDF stage is needed.
func (s *Service) RenderPDF(ctx context.Context, htmlContent string) ([]byte, error) {
	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return s.pdf.RenderFromFile(ctx, tmpPath, &pdfOptions{PageNumbers: s.cfg.pageNumbers})
}

// Close releases resources (headless Chrome browser).
func (s *Service) Close() error {
	if s.pdf != nil {
		return s.pdf.Close()
	}
	return nil
}

// renderMissingPages renders markdown sources referenced by the TOC that have
// no page under the render dir yet. A missing source is tolerated the same
// way a missing rendered page is; it surfaces later as a skipped fragment.
func (s *Service) renderMissingPages(ctx context.Context, site *Site, nodes []*TocNode) error {
	for _, node := range nodes {
		if node.Document == "" {
			continue
		}

		switch path.Ext(filepath.ToSlash(node.Document)) {
		case ".md", ".markdown":
		default:
			continue
		}

		htmlPath, err := site.HTMLPath(node.Document)
		if err != nil {
			return err
		}
		if fileutil.FileExists(htmlPath) {
			continue
		}

		srcPath := site.sourcePath(node.Document)
		if !fileutil.FileExists(srcPath) {
			continue
		}

		data, err := os.ReadFile(srcPath) // #nosec G304 -- path derived from site layout
		if err != nil {
			return fmt.Errorf("reading markdown source %s: %w", node.Document, err)
		}

		title := node.Title
		if title == "" {
			title = path.Base(filepath.ToSlash(node.Document))
		}

		pageHTML, err := s.renderer.RenderPage(ctx, title, string(data))
		if err != nil {
			return fmt.Errorf("rendering %s: %w", node.Document, err)
		}

		if err := os.MkdirAll(filepath.Dir(htmlPath), dirPermissions); err != nil {
			return fmt.Errorf("creating render directory: %w", err)
		}
		// #nosec G306 -- rendered pages are meant to be readable
		if err := os.WriteFile(htmlPath, []byte(pageHTML), filePermissions); err != nil {
			return fmt.Errorf("writing rendered page %s: %w", node.Document, err)
		}

		s.cfg.logger.Debug("rendered page", "document", node.Document, "output", htmlPath)
	}

	return nil
}

// pdfSourcePath names the merged artifact: the TOC's path with its extension
// replaced by .pdf.html, optionally redirected into outputDir.
func pdfSourcePath(tocPath, outputDir string) string {
	base := filepath.Base(tocPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	dir := outputDir
	if dir == "" {
		dir = filepath.Dir(tocPath)
	}

	return filepath.Join(dir, stem+".pdf.html")
}
