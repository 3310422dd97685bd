package zzre

var defaultMatchConfig = matchConfig{
	backtracking: false,
}

type matchConfig struct {
	backtracking bool
}

// MatchOption functions optionally alter how Match and Search evaluate
// an expression.
type MatchOption = func(*matchConfig)

// Backtracking changes how alternation and concatenation are evaluated.
// If enabled, every possible match length is explored, so an
// alternative that fails cannot affect the alternatives after it. If
// disabled, evaluation consumes input from a single shared cursor with
// no rollback on failure. Disabled by default.
func Backtracking(enable bool) MatchOption {
	return func(cfg *matchConfig) {
		cfg.backtracking = enable
	}
}
