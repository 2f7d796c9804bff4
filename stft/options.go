package stft

// Config defines analyzer framing settings.
type Config struct {
	// SampleRate is the capture sample rate in Hz. Must be > 0.
	SampleRate float64

	// FFTSize is the transform length in samples. Must be a power of two;
	// the emitted magnitude frames have FFTSize/2 bins.
	FFTSize int

	// Overlap is the fraction of the frame shared between consecutive
	// transforms, in [0, 1). 0.5 halves the hop.
	Overlap float64

	// Window selects the analysis window.
	Window WindowType
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns sensible streaming defaults.
func DefaultConfig() Config {
	return Config{
		SampleRate: 44100,
		FFTSize:    2048,
		Overlap:    0.5,
		Window:     WindowHann,
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

// WithFFTSize sets the transform length.
func WithFFTSize(size int) Option {
	return func(cfg *Config) {
		if size > 0 {
			cfg.FFTSize = size
		}
	}
}

// WithOverlap sets the inter-frame overlap fraction.
func WithOverlap(overlap float64) Option {
	return func(cfg *Config) {
		if overlap >= 0 && overlap < 1 {
			cfg.Overlap = overlap
		}
	}
}

// WithWindow selects the analysis window.
func WithWindow(window WindowType) Option {
	return func(cfg *Config) {
		cfg.Window = window
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
