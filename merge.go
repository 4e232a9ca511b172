package site2pdf

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Merger concatenates a table of contents' pages into one linear HTML
// document. Pages are transformed concurrently; output order is fixed by the
// flattened pre-order position of each node, never by completion order.
type Merger struct {
	loc       Locator
	workers   int
	container string
	logger    *slog.Logger

	// transform is swapped by tests to inject latency and failures.
	transform func(node *TocNode) (string, error)
}

// MergerOption configures a Merger.
type MergerOption func(*Merger)

// WithMergeWorkers caps the number of pages transformed concurrently.
// Values below 1 are ignored.
func WithMergeWorkers(n int) MergerOption {
	return func(m *Merger) {
		if n > 0 {
			m.workers = n
		}
	}
}

// WithMergeLogger sets a custom logger for merge progress.
func WithMergeLogger(logger *slog.Logger) MergerOption {
	return func(m *Merger) {
		m.logger = logger
	}
}

// WithContainer sets the element name tagged with each page's identifier.
// Default is "main".
func WithContainer(tag string) MergerOption {
	return func(m *Merger) {
		if tag != "" {
			m.container = tag
		}
	}
}

// NewMerger creates a Merger over the given locator.
func NewMerger(loc Locator, opts ...MergerOption) *Merger {
	m := &Merger{
		loc:       loc,
		workers:   runtime.GOMAXPROCS(0),
		container: defaultContainerTag,
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.logger == nil {
		m.logger = slog.Default()
	}
	if m.transform == nil {
		m.transform = func(node *TocNode) (string, error) {
			return transformPage(node, m.loc, m.container)
		}
	}

	return m
}

// Merge flattens the tree, transforms every node concurrently, and writes the
// non-empty fragments to w in flattened order, returning the fragment count.
// The first transformation error fails the whole merge and nothing is written:
// each worker fills exactly one write-once slot, and slots are only read after
// all workers have joined.
func (m *Merger) Merge(ctx context.Context, root *TocNode, w io.Writer) (int, error) {
	nodes := Flatten(root)
	fragments := make([]string, len(nodes))

	m.logger.Debug("merging toc", "nodes", len(nodes), "workers", m.workers)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.workers)

	for i, node := range nodes {
		i, node := i, node
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			frag, err := m.transform(node)
			if err != nil {
				return err
			}

			fragments[i] = frag
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	pages := 0
	for _, frag := range fragments {
		if frag == "" {
			continue
		}
		if _, err := io.WriteString(w, frag); err != nil {
			return pages, fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return pages, fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		pages++
	}

	m.logger.Debug("merge complete", "pages", pages, "skipped", len(nodes)-pages)
	return pages, nil
}
