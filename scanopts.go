package zzre

var defaultScanConfig = scanConfig{}

type scanConfig struct {
	goroutines int
	matchOpts  []MatchOption
}

// ScanOption functions optionally alter how Scan and MultiScan operate.
type ScanOption = func(*scanConfig)

// Goroutines limits the number of worker goroutines MultiScan uses. By
// default (or if n is not positive) MultiScan uses one goroutine per
// source. Scan ignores this option.
func Goroutines(n int) ScanOption {
	return func(cfg *scanConfig) {
		cfg.goroutines = n
	}
}

// WithMatchOptions passes match options through to the Search performed
// on each line.
func WithMatchOptions(opts ...MatchOption) ScanOption {
	return func(cfg *scanConfig) {
		cfg.matchOpts = opts
	}
}
