package configs

import "time"

// Ingest sizes the per-campaign buffers.
type Ingest struct {
	WindowCapacity  int `env:"WINDOW_CAPACITY" envDefault:"256"`
	HistoryCapacity int `env:"HISTORY_CAPACITY" envDefault:"64"`
	// PendingCapacity and PendingGrace bound events held for campaigns
	// whose config has not arrived yet. Zero disables holding.
	PendingCapacity int           `env:"PENDING_CAPACITY" envDefault:"128"`
	PendingGrace    time.Duration `env:"PENDING_GRACE" envDefault:"2m"`
}
