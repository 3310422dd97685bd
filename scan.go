package zzre

import (
	"bufio"
	"errors"
	"io"
)

// ErrStop can be returned by a ScanFunc or MultiScanFunc to end the
// scan early. The scan returns nil in that case.
var ErrStop = errors.New("stop the scan")

// ScanFunc is called by Scan with the number and text of each matching
// line. Line numbers start at 1. Returning an error stops the scan;
// ErrStop stops it without the scan reporting an error.
type ScanFunc = func(line int, text string) error

// Scan reads r one line at a time and calls f for every line that e
// matches somewhere within (in the manner of Search).
func Scan(r io.Reader, e Expr, f ScanFunc, opts ...ScanOption) error {
	if f == nil {
		return errors.New("nil ScanFunc in arg to Scan")
	}
	cfg := defaultScanConfig
	for _, o := range opts {
		if o == nil {
			continue
		}
		o(&cfg)
	}
	return scan(r, e, f, &cfg)
}

func scan(r io.Reader, e Expr, f ScanFunc, cfg *scanConfig) error {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if !Search(e, text, cfg.matchOpts...) {
			continue
		}
		if err := f(line, text); err != nil {
			if errors.Is(err, ErrStop) {
				return nil
			}
			return err
		}
	}
	return sc.Err()
}
