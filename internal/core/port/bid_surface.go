package port

import (
	"context"

	"mesa-pacing/internal/core/domain"
)

// BidSurface is the bid and spend control surface pacing decisions are
// pushed to. A decision may be delivered more than once, so implementations
// must tolerate repeats of the same decision ID.
type BidSurface interface {
	ApplyDecision(ctx context.Context, d domain.Decision) error
}
