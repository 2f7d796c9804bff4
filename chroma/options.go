package chroma

// Config defines the numeric policy of the reduction pipeline.
//
// The defaults are tuned for live microphone input analyzed with a 2048-point
// FFT at 44.1 kHz (1024 magnitude bins); they are safe starting points for
// other framings as long as the band cutoffs are adjusted to taste.
type Config struct {
	// SampleRate is the capture sample rate in Hz. Must be > 0.
	SampleRate float64

	// Sensitivity is the gain applied to the peak level estimate and, as a
	// secondary gain, to the normalized chroma values. The double application
	// is deliberate: it lets several pitch classes saturate at 1.0
	// simultaneously instead of always exactly one.
	Sensitivity float64

	// SkipBins excludes the lowest bins from the level scan; they carry DC
	// and device-offset energy unrelated to actual sound.
	SkipBins int

	// ActivityThreshold gates the chroma computation on the raw amplified
	// level. At or below the threshold the previous vector decays instead.
	ActivityThreshold float64

	// DecayFactor multiplies the previous vector once per silent frame.
	DecayFactor float64

	// LowCutBin and HighCutBin bound the bin band folded onto pitch classes,
	// inclusive on both ends. Bins outside are ignored as rumble and
	// ultrasonic noise.
	LowCutBin  int
	HighCutBin int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		SampleRate:        44100,
		Sensitivity:       5.0,
		SkipBins:          4,
		ActivityThreshold: 0.1,
		DecayFactor:       0.8,
		LowCutBin:         10,
		HighCutBin:        500,
	}
}

// WithSampleRate sets the capture sample rate.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *Config) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithSensitivity sets the initial sensitivity gain.
func WithSensitivity(sensitivity float64) Option {
	return func(cfg *Config) {
		if sensitivity > 0 {
			cfg.Sensitivity = sensitivity
		}
	}
}

// WithSkipBins sets how many leading bins the level scan ignores.
func WithSkipBins(bins int) Option {
	return func(cfg *Config) {
		if bins >= 0 {
			cfg.SkipBins = bins
		}
	}
}

// WithActivityThreshold sets the raw-level gate below which the chroma
// vector decays instead of being recomputed.
func WithActivityThreshold(threshold float64) Option {
	return func(cfg *Config) {
		if threshold >= 0 {
			cfg.ActivityThreshold = threshold
		}
	}
}

// WithDecayFactor sets the per-frame silence decay multiplier.
func WithDecayFactor(factor float64) Option {
	return func(cfg *Config) {
		if factor >= 0 && factor < 1 {
			cfg.DecayFactor = factor
		}
	}
}

// WithBand sets the inclusive bin band folded onto pitch classes.
func WithBand(lowCut, highCut int) Option {
	return func(cfg *Config) {
		if lowCut >= 0 && highCut >= lowCut {
			cfg.LowCutBin = lowCut
			cfg.HighCutBin = highCut
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
