package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	site2pdf "github.com/alnah/go-site2pdf"
)

// Sentinel errors for CLI operations.
var (
	ErrNoTOC              = errors.New("no table of contents specified")
	ErrInvalidTimeout     = errors.New("invalid timeout")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// Builder is the interface for the build service.
type Builder interface {
	Build(ctx context.Context, input site2pdf.Input) (*site2pdf.Result, error)
}

// Compile-time interface implementation check.
var _ Builder = (*site2pdf.Service)(nil)

// Pool abstracts service pool operations for testability.
type Pool interface {
	Acquire() Builder
	Release(Builder)
	Size() int
}

// servicePool adapts site2pdf.ServicePool to the Pool interface.
type servicePool struct {
	p *site2pdf.ServicePool
}

func (sp servicePool) Acquire() Builder { return sp.p.Acquire() }

func (sp servicePool) Release(b Builder) {
	if svc, ok := b.(*site2pdf.Service); ok {
		sp.p.Release(svc)
	}
}

func (sp servicePool) Size() int { return sp.p.Size() }

// Environment groups output streams so tests can capture them.
type Environment struct {
	Stdout io.Writer
	Stderr io.Writer
}

// BuildOutcome holds the result of building one table of contents.
type BuildOutcome struct {
	TOCPath  string
	HTMLPath string
	PDFPath  string
	Pages    int
	Err      error
	Duration time.Duration
}

// run orchestrates the build process for all TOC paths on the command line.
// Failures are independent per TOC: one broken table of contents does not
// abort its siblings, but it does fail the overall run.
func run(args []string, pool Pool, env *Environment) error {
	flags, tocs, err := parseFlags(args)
	if err != nil {
		return err
	}

	if flags.version {
		fmt.Fprintf(env.Stdout, "site2pdf %s\n", Version)
		return nil
	}

	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	if len(tocs) == 0 {
		return ErrNoTOC
	}

	results := buildBatch(context.Background(), pool, tocs, flags)
	failed := printResults(results, flags.quiet, flags.verbose, env)

	if failed > 0 {
		return fmt.Errorf("%d of %d builds failed", failed, len(results))
	}
	return nil
}

// validateWorkers rejects negative worker counts early.
func validateWorkers(workers int) error {
	if workers < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkerCount, workers)
	}
	return nil
}

// buildBatch processes TOC files concurrently using the service pool.
// Result slot i belongs to tocs[i] regardless of completion order.
func buildBatch(ctx context.Context, pool Pool, tocs []string, flags *buildFlags) []BuildOutcome {
	if len(tocs) == 0 {
		return nil
	}

	concurrency := pool.Size()
	if concurrency > len(tocs) {
		concurrency = len(tocs)
	}

	results := make([]BuildOutcome, len(tocs))
	var wg sync.WaitGroup
	jobs := make(chan int, len(tocs))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			svc := pool.Acquire()
			defer pool.Release(svc)

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = BuildOutcome{TOCPath: tocs[idx], Err: ctx.Err()}
					continue
				}
				results[idx] = buildOne(ctx, svc, tocs[idx], flags)
			}
		}()
	}

	for i := range tocs {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// buildOne builds a single table of contents and returns the outcome.
func buildOne(ctx context.Context, svc Builder, tocPath string, flags *buildFlags) BuildOutcome {
	start := time.Now()
	outcome := BuildOutcome{TOCPath: tocPath}

	result, err := svc.Build(ctx, site2pdf.Input{
		TOCPath: tocPath,
		Site: &site2pdf.Site{
			SourceDir: flags.sourceDir,
			RenderDir: flags.renderDir,
			BaseURL:   flags.baseURL,
		},
		OutputDir: flags.output,
		PDF:       flags.pdf,
	})
	outcome.Duration = time.Since(start)

	if err != nil {
		outcome.Err = err
		return outcome
	}

	outcome.HTMLPath = result.HTMLPath
	outcome.PDFPath = result.PDFPath
	outcome.Pages = result.Pages
	return outcome
}

// printResults reports each outcome and returns the failure count.
// This is the build's central error collector: every per-TOC failure
// surfaces here instead of aborting the run.
func printResults(results []BuildOutcome, quiet, verbose bool, env *Environment) int {
	failed := 0

	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.TOCPath, r.Err)
			continue
		}

		if quiet {
			continue
		}

		out := r.HTMLPath
		if r.PDFPath != "" {
			out = r.PDFPath
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%d pages, %v)\n",
				r.TOCPath, out, r.Pages, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", out)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", len(results)-failed, failed)
	}

	return failed
}
