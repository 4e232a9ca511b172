package main

import (
	flag "github.com/spf13/pflag"
)

// buildFlags holds all CLI flags.
type buildFlags struct {
	output      string
	sourceDir   string
	renderDir   string
	baseURL     string
	container   string
	timeout     string
	workers     int
	pdf         bool
	pageNumbers bool
	quiet       bool
	verbose     bool
	version     bool
}

// newFlagSet builds the flag set bound to f.
func newFlagSet(f *buildFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("site2pdf", flag.ContinueOnError)
	fs.SortFlags = false

	fs.StringVarP(&f.output, "output", "o", "", "output directory (default: alongside each toc)")
	fs.StringVar(&f.sourceDir, "source-dir", "", "markdown source directory")
	fs.StringVar(&f.renderDir, "render-dir", "", "rendered pages directory (default: each toc's directory)")
	fs.StringVar(&f.baseURL, "base-url", "", "canonical site base URL (default: the toc's baseUrl)")
	fs.StringVar(&f.container, "container", "", "main content element name (default: main)")
	fs.StringVar(&f.timeout, "timeout", "", "PDF rendering timeout, e.g. 90s or 2m")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel toc builds (default: half of CPUs, max 8)")
	fs.BoolVar(&f.pdf, "pdf", false, "also render each merged document to PDF")
	fs.BoolVar(&f.pageNumbers, "page-numbers", false, "add a page-number footer to PDF output")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	return fs
}

// parseFlags parses args (including the program name) and returns the flags
// and the positional toc paths.
func parseFlags(args []string) (*buildFlags, []string, error) {
	f := &buildFlags{}
	fs := newFlagSet(f)

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
