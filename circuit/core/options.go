package core

// SimConfig defines common simulation settings.
type SimConfig struct {
	SampleRate float64
}

// SimOption mutates a SimConfig.
type SimOption func(*SimConfig)

// DefaultSimConfig returns the default configuration used by the
// reference transient runs.
func DefaultSimConfig() SimConfig {
	return SimConfig{
		SampleRate: 200000,
	}
}

// WithSampleRate sets the simulation sample rate.
func WithSampleRate(sampleRate float64) SimOption {
	return func(cfg *SimConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// ApplySimOptions applies zero or more options to the default config.
func ApplySimOptions(opts ...SimOption) SimConfig {
	cfg := DefaultSimConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
