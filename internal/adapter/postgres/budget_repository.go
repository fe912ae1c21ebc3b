package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mesa-pacing/internal/core/domain"
)

const budgetColumns = `
            b.campaign_id,
            b.period_start,
            b.period_end,
            b.total_budget,
            b.curve,
            b.curve_points,
            b.min_multiplier,
            b.max_multiplier`

// BudgetRepository implements port.ConfigStore using pgxpool for PostgreSQL.
type BudgetRepository struct {
	pool *pgxpool.Pool
}

// NewBudgetRepository returns a new repository instance.
func NewBudgetRepository(pool *pgxpool.Pool) *BudgetRepository {
	return &BudgetRepository{pool: pool}
}

// budgetRow is a campaign_budgets row before validation.
type budgetRow struct {
	CampaignID    int64
	PeriodStart   time.Time
	PeriodEnd     time.Time
	TotalBudget   int64
	Curve         string
	CurvePoints   []byte
	MinMultiplier float64
	MaxMultiplier float64
}

func scanBudgetRow(row pgx.CollectableRow) (budgetRow, error) {
	var b budgetRow
	err := row.Scan(
		&b.CampaignID,
		&b.PeriodStart,
		&b.PeriodEnd,
		&b.TotalBudget,
		&b.Curve,
		&b.CurvePoints,
		&b.MinMultiplier,
		&b.MaxMultiplier,
	)
	return b, err
}

// config converts the row into a validated budget config.
func (b budgetRow) config() (domain.BudgetConfig, error) {
	kind, err := domain.ParseCurveKind(b.Curve)
	if err != nil {
		return domain.BudgetConfig{}, fmt.Errorf("campaign %d: %w", b.CampaignID, err)
	}
	curve := domain.Curve{Kind: kind}
	if kind == domain.CurveCustom && len(b.CurvePoints) > 0 {
		if err = json.Unmarshal(b.CurvePoints, &curve.Points); err != nil {
			return domain.BudgetConfig{}, fmt.Errorf("%w: campaign %d: curve points: %w", domain.ErrInvalidConfig, b.CampaignID, err)
		}
	}
	cfg := domain.BudgetConfig{
		CampaignID:    b.CampaignID,
		PeriodStart:   b.PeriodStart.UTC(),
		PeriodEnd:     b.PeriodEnd.UTC(),
		TotalBudget:   b.TotalBudget,
		Curve:         curve,
		MinMultiplier: b.MinMultiplier,
		MaxMultiplier: b.MaxMultiplier,
	}
	return cfg, cfg.Validate()
}

// GetActiveCampaignConfigs returns the budget of every active campaign
// whose period covers the current time. Invalid rows are skipped and
// reported in the returned error alongside the valid configs.
func (r *BudgetRepository) GetActiveCampaignConfigs(ctx context.Context) ([]domain.BudgetConfig, error) {
	query := `
        SELECT` + budgetColumns + `
        FROM campaign_budgets b
        JOIN campaigns c ON c.id = b.campaign_id
        WHERE c.status = 'active'
          AND now() >= b.period_start AND now() < b.period_end
        ORDER BY b.campaign_id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	raw, err := pgx.CollectRows(rows, scanBudgetRow)
	if err != nil {
		return nil, err
	}
	cfgs := make([]domain.BudgetConfig, 0, len(raw))
	var errs []error
	for _, b := range raw {
		cfg, err := b.config()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		cfgs = append(cfgs, cfg)
	}
	return cfgs, errors.Join(errs...)
}

// GetCampaignConfig returns the budget of one campaign for the period
// covering the current time, or nil when the campaign is inactive or has
// no such period.
func (r *BudgetRepository) GetCampaignConfig(ctx context.Context, campaignID int64) (*domain.BudgetConfig, error) {
	query := `
        SELECT` + budgetColumns + `
        FROM campaign_budgets b
        JOIN campaigns c ON c.id = b.campaign_id
        WHERE b.campaign_id = $1
          AND c.status = 'active'
          AND now() >= b.period_start AND now() < b.period_end
        ORDER BY b.period_start DESC
        LIMIT 1`
	rows, err := r.pool.Query(ctx, query, campaignID)
	if err != nil {
		return nil, err
	}
	b, err := pgx.CollectExactlyOneRow(rows, scanBudgetRow)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	cfg, err := b.config()
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// UpsertBudget creates or replaces the budget of cfg's campaign and period.
// The change trigger notifies listeners.
func (r *BudgetRepository) UpsertBudget(ctx context.Context, cfg domain.BudgetConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	var points []byte
	if cfg.Curve.Kind == domain.CurveCustom {
		var err error
		if points, err = json.Marshal(cfg.Curve.Points); err != nil {
			return err
		}
	}
	_, err := r.pool.Exec(ctx, `
        INSERT INTO campaign_budgets
            (campaign_id, period_start, period_end, total_budget, curve, curve_points, min_multiplier, max_multiplier)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        ON CONFLICT (campaign_id, period_start) DO UPDATE SET
            period_end = EXCLUDED.period_end,
            total_budget = EXCLUDED.total_budget,
            curve = EXCLUDED.curve,
            curve_points = EXCLUDED.curve_points,
            min_multiplier = EXCLUDED.min_multiplier,
            max_multiplier = EXCLUDED.max_multiplier,
            updated_at = now()`,
		cfg.CampaignID, cfg.PeriodStart, cfg.PeriodEnd, cfg.TotalBudget, string(cfg.Curve.Kind), points,
		cfg.MinMultiplier, cfg.MaxMultiplier)
	return err
}
