package configs

import "time"

// Scheduler configures the evaluation tick.
type Scheduler struct {
	Interval time.Duration `env:"INTERVAL" envDefault:"10s"`
	// Concurrency caps parallel campaign evaluations within a tick.
	Concurrency int `env:"CONCURRENCY" envDefault:"16"`
	// EvalTimeout bounds a single campaign evaluation.
	EvalTimeout time.Duration `env:"EVAL_TIMEOUT" envDefault:"2s"`
	// SyncInterval is how often all configs are re-read in case change
	// notifications were missed. Zero disables periodic syncs.
	SyncInterval time.Duration `env:"SYNC_INTERVAL" envDefault:"5m"`
}
