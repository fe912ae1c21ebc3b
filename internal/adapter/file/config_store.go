package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"mesa-pacing/internal/core/domain"
)

// document is the YAML layout of a budgets file:
//
//	campaigns:
//	  - campaign_id: 1
//	    period_start: 2026-10-17T00:00:00Z
//	    period_end: 2026-10-18T00:00:00Z
//	    total_budget: 100000
//	    curve: {kind: front_loaded}
//	    min_multiplier: 0.5
//	    max_multiplier: 2
type document struct {
	Campaigns []domain.BudgetConfig `yaml:"campaigns"`
}

// ConfigStore implements port.ConfigStore over a YAML file. The file is
// parsed by Load and served from memory; a file that fails to parse leaves
// the previously loaded budgets in place.
type ConfigStore struct {
	path string
	now  func() time.Time

	mu      sync.RWMutex
	budgets []domain.BudgetConfig
}

// NewConfigStore returns a store reading path. Call Load before use.
func NewConfigStore(path string) *ConfigStore {
	return &ConfigStore{path: path, now: time.Now}
}

// Path returns the file the store reads.
func (s *ConfigStore) Path() string { return s.path }

// Load re-reads the file. Entries that fail validation are skipped and
// reported in the returned error; the valid ones are still installed.
func (s *ConfigStore) Load() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("read budgets: %w", err)
	}
	budgets, err := parse(raw)
	if budgets == nil && err != nil {
		return err
	}
	s.mu.Lock()
	s.budgets = budgets
	s.mu.Unlock()
	return err
}

func parse(raw []byte) ([]domain.BudgetConfig, error) {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse budgets: %w", err)
	}
	budgets := make([]domain.BudgetConfig, 0, len(doc.Campaigns))
	seen := make(map[[2]int64]bool, len(doc.Campaigns))
	var errs []error
	for i, cfg := range doc.Campaigns {
		kind, err := domain.ParseCurveKind(string(cfg.Curve.Kind))
		if err != nil {
			errs = append(errs, fmt.Errorf("entry %d: %w", i, err))
			continue
		}
		cfg.Curve.Kind = kind
		cfg.PeriodStart = cfg.PeriodStart.UTC()
		cfg.PeriodEnd = cfg.PeriodEnd.UTC()
		if err = cfg.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("entry %d: %w", i, err))
			continue
		}
		key := [2]int64{cfg.CampaignID, cfg.PeriodStart.UnixNano()}
		if seen[key] {
			errs = append(errs, fmt.Errorf("entry %d: %w: campaign %d period %s listed twice",
				i, domain.ErrInvalidConfig, cfg.CampaignID, cfg.PeriodStart.Format(time.RFC3339)))
			continue
		}
		seen[key] = true
		budgets = append(budgets, cfg)
	}
	return budgets, errors.Join(errs...)
}

// GetActiveCampaignConfigs returns every budget whose period covers the
// current time.
func (s *ConfigStore) GetActiveCampaignConfigs(_ context.Context) ([]domain.BudgetConfig, error) {
	now := s.now()
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.BudgetConfig
	for _, cfg := range s.budgets {
		if cfg.Contains(now) {
			out = append(out, cfg)
		}
	}
	return out, nil
}

// GetCampaignConfig returns the budget of campaignID covering the current
// time, or nil.
func (s *ConfigStore) GetCampaignConfig(_ context.Context, campaignID int64) (*domain.BudgetConfig, error) {
	now := s.now()
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, cfg := range s.budgets {
		if cfg.CampaignID == campaignID && cfg.Contains(now) {
			return &cfg, nil
		}
	}
	return nil, nil
}
