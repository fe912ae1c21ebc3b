package configs

// Telemetry configures OpenTelemetry tracing.
type Telemetry struct {
	Enabled     bool    `env:"ENABLED" envDefault:"false"`
	Endpoint    string  `env:"ENDPOINT" envDefault:"localhost:4317"`
	Insecure    bool    `env:"INSECURE" envDefault:"true"`
	ServiceName string  `env:"SERVICE_NAME" envDefault:"mesa-pacing"`
	SampleRatio float64 `env:"SAMPLE_RATIO" envDefault:"1"`
}
