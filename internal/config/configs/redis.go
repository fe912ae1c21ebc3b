package configs

import "time"

// Redis configures the Redis bid surface and spend event stream.
type Redis struct {
	Addr     string `env:"ADDRESS" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`

	// PublishDecisions sends pacing decisions to Redis. When false,
	// decisions are only logged.
	PublishDecisions bool `env:"PUBLISH_DECISIONS" envDefault:"false"`
	// DecisionKeyPrefix prefixes the per-campaign hash bidders read.
	DecisionKeyPrefix string `env:"DECISION_KEY_PREFIX" envDefault:"pacing:decision:"`
	// DecisionChannel is the pub/sub channel decisions are announced on.
	DecisionChannel string `env:"DECISION_CHANNEL" envDefault:"pacing:decisions"`
	// DecisionTTL expires a campaign's decision if pacing stops updating it.
	DecisionTTL time.Duration `env:"DECISION_TTL" envDefault:"10m"`

	// ConsumeEvents reads spend events from Stream using consumer Group.
	ConsumeEvents bool   `env:"CONSUME_EVENTS" envDefault:"false"`
	Stream        string `env:"STREAM" envDefault:"spend-events"`
	Group         string `env:"GROUP" envDefault:"mesa-pacing"`
	// Consumer names this instance within Group. Empty picks a random name.
	Consumer  string        `env:"CONSUMER"`
	BatchSize int64         `env:"BATCH_SIZE" envDefault:"256"`
	Block     time.Duration `env:"BLOCK" envDefault:"2s"`
}
