package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"

	"mesa-pacing/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to traces as the deployment environment.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection. Environment variables
	// prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	Redis     configs.Redis     `envPrefix:"REDIS_"`
	Pacing    configs.Pacing    `envPrefix:"PACING_"`
	Anomaly   configs.Anomaly   `envPrefix:"ANOMALY_"`
	Scheduler configs.Scheduler `envPrefix:"SCHEDULER_"`
	Ingest    configs.Ingest    `envPrefix:"INGEST_"`
	Telemetry configs.Telemetry `envPrefix:"OTEL_"`
	Source    configs.Source    `envPrefix:"CONFIG_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing or validation fails, an error is returned. All fields are loaded
// with their specified defaults when no environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects settings the pacing loop cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Scheduler.Interval <= 0 {
		errs = append(errs, errors.New("SCHEDULER_INTERVAL must be positive"))
	}
	if c.Scheduler.Concurrency < 1 {
		errs = append(errs, errors.New("SCHEDULER_CONCURRENCY must be at least 1"))
	}
	if c.Scheduler.EvalTimeout <= 0 {
		errs = append(errs, errors.New("SCHEDULER_EVAL_TIMEOUT must be positive"))
	}
	if c.Pacing.DeadBand < 0 || c.Pacing.MaxStep < 0 || c.Pacing.ThrottleMaxStep < 0 {
		errs = append(errs, errors.New("PACING_DEAD_BAND and step limits must not be negative"))
	}
	if c.Pacing.DefaultThrottle < 0 || c.Pacing.DefaultThrottle > 1 {
		errs = append(errs, fmt.Errorf("PACING_DEFAULT_THROTTLE %g outside [0,1]", c.Pacing.DefaultThrottle))
	}
	if c.Anomaly.Window <= 0 {
		errs = append(errs, errors.New("ANOMALY_WINDOW must be positive"))
	}
	switch c.Source.Kind {
	case configs.SourcePostgres, configs.SourceFile:
	default:
		errs = append(errs, fmt.Errorf("CONFIG_SOURCE %q: want %q or %q",
			c.Source.Kind, configs.SourcePostgres, configs.SourceFile))
	}
	return errors.Join(errs...)
}
