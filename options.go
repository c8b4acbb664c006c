package jsongrid

// Defaults for the scorer's sampling and key-stability thresholds.
const (
	// DefaultSampleCap bounds how many leading elements of a candidate array
	// the scorer inspects.
	DefaultSampleCap = 50
	// DefaultStableKeyRatio is the fraction of sampled objects a field must
	// appear in to count as a stable key.
	DefaultStableKeyRatio = 0.4
)

// Options bundles derivation options. The zero value selects the defaults.
type Options struct {
	// SampleCap overrides DefaultSampleCap when > 0.
	SampleCap int
	// StableKeyRatio overrides DefaultStableKeyRatio when > 0.
	StableKeyRatio float64
	// Repair enables a last-resort recovery stage in the tolerant parser:
	// when every regular strategy fails, the text is run through jsonrepair
	// and parsed strictly. Off by default so that clearly broken input still
	// surfaces as a parse failure.
	Repair bool
}

// normalizeOptions applies last-wins semantics over the variadic options and
// fills in defaults.
func normalizeOptions(opts []Options) Options {
	var opt Options
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if opt.SampleCap <= 0 {
		opt.SampleCap = DefaultSampleCap
	}
	if opt.StableKeyRatio <= 0 {
		opt.StableKeyRatio = DefaultStableKeyRatio
	}
	return opt
}
