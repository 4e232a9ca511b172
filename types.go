package site2pdf

import (
	"log/slog"
	"time"
)

// Input names one build: a table of contents and the site it belongs to.
type Input struct {
	// TOCPath is the YAML table of contents to merge (required).
	TOCPath string

	// Site locates rendered pages and derives canonical URLs (required).
	// If Site.BaseURL is empty the TOC file's baseUrl is used.
	// If Site.RenderDir is empty the TOC file's directory is used.
	Site *Site

	// OutputDir receives the merged artifacts (empty = alongside the TOC).
	OutputDir string

	// PDF additionally renders the merged HTML to PDF via headless Chrome.
	PDF bool
}

// Result holds the artifacts produced by one build.
type Result struct {
	// HTMLPath is the merged PDF-source HTML document.
	HTMLPath string

	// PDFPath is set when Input.PDF was requested.
	PDFPath string

	// Pages is the number of page fragments in the merged document.
	Pages int
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout     time.Duration
	workers     int
	container   string
	pageNumbers bool
	logger      *slog.Logger
}

// defaultTimeout bounds the PDF rendering stage.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the PDF rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("site2pdf: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithWorkers caps the number of pages transformed concurrently per merge.
// Values below 1 leave the default (GOMAXPROCS).
func WithWorkers(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.cfg.workers = n
		}
	}
}

// WithContainerTag sets the element name that receives each page's own
// identifier in the merged document. Default is "main".
func WithContainerTag(tag string) Option {
	return func(s *Service) {
		if tag != "" {
			s.cfg.container = tag
		}
	}
}

// WithPageNumbers enables the page-number footer in PDF output.
func WithPageNumbers() Option {
	return func(s *Service) {
		s.cfg.pageNumbers = true
	}
}

// WithLogger sets a custom logger for build progress.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.cfg.logger = logger
	}
}
