package configs

import "time"

// Pacing tunes the proportional controller.
type Pacing struct {
	DeadBand        float64 `env:"DEAD_BAND" envDefault:"0.02"`
	Gain            float64 `env:"GAIN" envDefault:"0.5"`
	MaxStep         float64 `env:"MAX_STEP" envDefault:"0.10"`
	ThrottleGain    float64 `env:"THROTTLE_GAIN" envDefault:"2.0"`
	ThrottleMaxStep float64 `env:"THROTTLE_MAX_STEP" envDefault:"0.05"`
	// SlopeFloor keeps flat curve segments from making all spend anomalous.
	SlopeFloor float64 `env:"SLOPE_FLOOR" envDefault:"0.1"`

	DefaultMultiplier float64 `env:"DEFAULT_MULTIPLIER" envDefault:"1.0"`
	DefaultThrottle   float64 `env:"DEFAULT_THROTTLE" envDefault:"0.8"`
}

// Anomaly configures spend-burst detection.
type Anomaly struct {
	Window    time.Duration `env:"WINDOW" envDefault:"1m"`
	Multiple  float64       `env:"MULTIPLE" envDefault:"5"`
	Threshold int           `env:"THRESHOLD" envDefault:"3"`
	Hold      time.Duration `env:"HOLD" envDefault:"15m"`
}
