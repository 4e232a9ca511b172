package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	site2pdf "github.com/alnah/go-site2pdf"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Parse flags first to get workers count and verbosity
	flags, _, err := parseFlags(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Configure GOMAXPROCS with conditional logging
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if flags.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	opts, err := serviceOptions(flags)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	poolSize := site2pdf.ResolvePoolSize(flags.workers)
	if flags.verbose {
		fmt.Fprintf(os.Stderr, "Pool size: %d\n", poolSize)
	}
	pool := site2pdf.NewServicePool(poolSize, func() *site2pdf.Service {
		return site2pdf.New(opts...)
	})
	defer pool.Close()

	env := &Environment{Stdout: os.Stdout, Stderr: os.Stderr}
	if err := run(os.Args, servicePool{p: pool}, env); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// serviceOptions translates CLI flags into service options.
func serviceOptions(f *buildFlags) ([]site2pdf.Option, error) {
	var opts []site2pdf.Option

	if f.timeout != "" {
		d, err := time.ParseDuration(f.timeout)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTimeout, f.timeout)
		}
		opts = append(opts, site2pdf.WithTimeout(d))
	}

	if f.container != "" {
		opts = append(opts, site2pdf.WithContainerTag(f.container))
	}
	if f.pageNumbers {
		opts = append(opts, site2pdf.WithPageNumbers())
	}

	level := slog.LevelInfo
	switch {
	case f.quiet:
		level = slog.LevelWarn
	case f.verbose:
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	opts = append(opts, site2pdf.WithLogger(logger))

	return opts, nil
}
