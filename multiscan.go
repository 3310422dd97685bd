package zzre

import (
	"bufio"
	"context"
	"errors"
	"io"
	"sync"
)

// Source is one named input for MultiScan.
type Source struct {
	// Name identifies the source in MultiScanFunc calls, e.g. a file
	// path.
	Name string

	// R supplies the source's lines.
	R io.Reader
}

// MultiScanFunc is called by MultiScan with the source name, line
// number and text of each matching line. It can be called concurrently
// from multiple goroutines - either make it safe for that, or set
// Goroutines to 1.
type MultiScanFunc = func(source string, line int, text string) error

// MultiScan is like Scan, but scans multiple sources simultaneously
// against one shared expression tree. The tree is never modified by
// matching, and every line match uses its own private cursor, so no
// synchronisation of the tree is needed. An error from any worker
// (other than ErrStop) cancels the remaining work and is returned.
func MultiScan(ctx context.Context, srcs []Source, e Expr, f MultiScanFunc, opts ...ScanOption) error {
	if f == nil {
		return errors.New("nil MultiScanFunc in arg to MultiScan")
	}

	cfg := defaultScanConfig
	for _, o := range opts {
		if o == nil {
			continue
		}
		o(&cfg)
	}

	// Spin up this many worker goroutines.
	if cfg.goroutines <= 0 || cfg.goroutines > len(srcs) {
		cfg.goroutines = len(srcs)
	}
	workCh := make(chan Source)
	wctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)
	var wg sync.WaitGroup
	for i := 0; i < cfg.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := multiScanWorker(wctx, &cfg, e, f, workCh); err != nil {
				cancel(err)
			}
		}()
	}

	// Feed work to the workers.
	for _, src := range srcs {
		select {
		case <-wctx.Done():
			return scanCause(wctx)

		case workCh <- src:
			// src has been fed
		}
	}
	close(workCh)

	wg.Wait()
	return scanCause(wctx)
}

// scanCause unwraps the context cause, treating ErrStop as a clean
// finish.
func scanCause(ctx context.Context) error {
	err := context.Cause(ctx)
	if errors.Is(err, ErrStop) {
		return nil
	}
	return err
}

func multiScanWorker(ctx context.Context, cfg *scanConfig, e Expr, f MultiScanFunc, workCh <-chan Source) error {
	for {
		var src Source
		select {
		case s, open := <-workCh:
			if !open {
				return nil
			}
			src = s

		case <-ctx.Done():
			return ctx.Err()
		}

		sc := bufio.NewScanner(src.R)
		line := 0
		for sc.Scan() {
			// Check that work isn't cancelled yet.
			if err := ctx.Err(); err != nil {
				return err
			}
			line++
			text := sc.Text()
			if !Search(e, text, cfg.matchOpts...) {
				continue
			}
			if err := f(src.Name, line, text); err != nil {
				return err
			}
		}
		if err := sc.Err(); err != nil {
			return err
		}
	}
}
