package port

import (
	"context"

	"mesa-pacing/internal/core/domain"
)

// ConfigStore is the outbound port to the campaign configuration
// collaborator. Implementations must be safe for concurrent use.
type ConfigStore interface {
	// GetActiveCampaignConfigs returns the config of every campaign whose
	// budget period covers the current time.
	GetActiveCampaignConfigs(ctx context.Context) ([]domain.BudgetConfig, error)
	// GetCampaignConfig returns the current config of one campaign, or nil
	// when the campaign has none.
	GetCampaignConfig(ctx context.Context, campaignID int64) (*domain.BudgetConfig, error)
}

// ConfigChangeHandler reacts to configuration changes.
type ConfigChangeHandler interface {
	// Reconcile creates, replaces or retires the pacing state of one
	// campaign from its current config.
	Reconcile(ctx context.Context, campaignID int64) error
	// SyncConfigs reconciles every campaign at once. It is used at startup
	// and whenever change notifications may have been lost.
	SyncConfigs(ctx context.Context) error
}

// ConfigWatcher delivers change notifications from the configuration
// store. Watch blocks until ctx is done.
type ConfigWatcher interface {
	Watch(ctx context.Context, h ConfigChangeHandler) error
}
