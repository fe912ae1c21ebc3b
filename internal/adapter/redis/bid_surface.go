package redisadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"mesa-pacing/internal/core/domain"
)

// applyDecision stores a decision in the campaign's hash and announces it.
// Repeats of the stored decision only refresh the TTL; decisions older than
// the stored one are ignored. Returns 1 when the decision was applied.
var applyDecision = redis.NewScript(`
local current = redis.call("hget", KEYS[1], "decision_id")
if current == ARGV[1] then
	redis.call("pexpire", KEYS[1], ARGV[7])
	return 0
end
local ts = tonumber(redis.call("hget", KEYS[1], "ts") or "0")
if ts > tonumber(ARGV[2]) then
	return 0
end
redis.call("hset", KEYS[1],
	"decision_id", ARGV[1],
	"ts", ARGV[2],
	"multiplier", ARGV[3],
	"throttle", ARGV[4],
	"status", ARGV[5],
	"reason", ARGV[6])
redis.call("pexpire", KEYS[1], ARGV[7])
redis.call("publish", KEYS[2], ARGV[8])
return 1
`)

// BidSurface implements port.BidSurface on Redis. Bidders read the
// per-campaign hash and may subscribe to the decision channel.
type BidSurface struct {
	client  redis.Scripter
	prefix  string
	channel string
	ttl     time.Duration
}

// NewBidSurface returns a surface writing hashes under prefix.
func NewBidSurface(client redis.Scripter, prefix, channel string, ttl time.Duration) *BidSurface {
	return &BidSurface{client: client, prefix: prefix, channel: channel, ttl: ttl}
}

func (s *BidSurface) key(campaignID int64) string {
	return s.prefix + strconv.FormatInt(campaignID, 10)
}

// ApplyDecision writes d unless a newer decision is already stored.
func (s *BidSurface) ApplyDecision(ctx context.Context, d domain.Decision) error {
	args, err := s.args(d)
	if err != nil {
		return err
	}
	if err = applyDecision.Run(ctx, s.client, []string{s.key(d.CampaignID), s.channel}, args...).Err(); err != nil {
		return fmt.Errorf("apply decision %s: %w", d.ID, err)
	}
	return nil
}

func (s *BidSurface) args(d domain.Decision) ([]any, error) {
	payload, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("marshal decision: %w", err)
	}
	ttl := s.ttl.Milliseconds()
	if ttl <= 0 {
		ttl = time.Minute.Milliseconds()
	}
	return []any{
		d.ID,
		d.Timestamp.UnixMilli(),
		strconv.FormatFloat(d.Multiplier, 'f', -1, 64),
		strconv.FormatFloat(d.Throttle, 'f', -1, 64),
		string(d.Status),
		string(d.Reason),
		ttl,
		payload,
	}, nil
}
