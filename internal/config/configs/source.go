package configs

import "time"

// Budget config sources.
const (
	SourcePostgres = "postgres"
	SourceFile     = "file"
)

// Source selects where budget configs are read from.
type Source struct {
	Kind string `env:"SOURCE" envDefault:"postgres"`
	// Path is the YAML file read when Kind is "file".
	Path string `env:"FILE" envDefault:"budgets.yaml"`
	// Debounce coalesces bursts of file change notifications.
	Debounce time.Duration `env:"DEBOUNCE" envDefault:"250ms"`
}
