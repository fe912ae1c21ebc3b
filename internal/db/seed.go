package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mesa-pacing/internal/core/domain"
)

// demoCurves cycles through the built-in curves, plus one custom curve.
var demoCurves = []domain.Curve{
	domain.LinearCurve(),
	{Kind: domain.CurveFrontLoaded},
	{Kind: domain.CurveBackLoaded},
	{Kind: domain.CurveCustom, Points: []domain.CurvePoint{{Period: 0.5, Budget: 0.2}, {Period: 0.9, Budget: 0.9}}},
}

// Seed inserts demo campaigns with a budget for the current UTC day.
// Existing rows are left untouched.
func Seed(ctx context.Context, pool *pgxpool.Pool, campaigns int) (err error) {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		err = tx.Commit(ctx)
	}()

	start := time.Now().UTC().Truncate(24 * time.Hour)
	end := start.Add(24 * time.Hour)
	for i := 1; i <= campaigns; i++ {
		if err = seedCampaign(ctx, tx, int64(i), start, end); err != nil {
			return err
		}
	}
	return nil
}

func seedCampaign(ctx context.Context, tx pgx.Tx, id int64, start, end time.Time) error {
	_, err := tx.Exec(ctx, `INSERT INTO campaigns (id, name, status)
VALUES ($1, $2, 'active') ON CONFLICT DO NOTHING`, id, fmt.Sprintf("Campaign %d", id))
	if err != nil {
		return err
	}

	curve := demoCurves[(id-1)%int64(len(demoCurves))]
	var points []byte
	if curve.Kind == domain.CurveCustom {
		if points, err = json.Marshal(curve.Points); err != nil {
			return err
		}
	}
	_, err = tx.Exec(ctx, `INSERT INTO campaign_budgets
    (campaign_id, period_start, period_end, total_budget, curve, curve_points, min_multiplier, max_multiplier)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8) ON CONFLICT DO NOTHING`,
		id, start, end, id*100000, string(curve.Kind), points, 0.5, 2.0)
	return err
}
