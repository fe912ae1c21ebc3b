package redisadapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"mesa-pacing/internal/core/domain"
	"mesa-pacing/internal/core/port"
)

// EventStream implements port.EventSource with a Redis stream consumer
// group. Each entry carries one spend event as the fields campaign_id,
// timestamp (RFC 3339 or unix milliseconds), amount and the optional
// clicks and conversions.
type EventStream struct {
	client   redis.UniversalClient
	stream   string
	group    string
	consumer string
	batch    int64
	block    time.Duration
	logger   *slog.Logger
}

// NewEventStream returns a consumer of stream. An empty consumer name is
// replaced by a random one.
func NewEventStream(client redis.UniversalClient, stream, group, consumer string, batch int64, block time.Duration, logger *slog.Logger) *EventStream {
	if consumer == "" {
		consumer = "pacing-" + uuid.NewString()
	}
	if batch <= 0 {
		batch = 256
	}
	return &EventStream{
		client:   client,
		stream:   stream,
		group:    group,
		consumer: consumer,
		batch:    batch,
		block:    block,
		logger:   logger.With(slog.String("stream", stream), slog.String("consumer", consumer)),
	}
}

// Run delivers events to sink until ctx is done. Entries left pending by a
// previous run of the same consumer are delivered first. Every entry is
// acknowledged once the sink has seen it, including rejected ones.
func (s *EventStream) Run(ctx context.Context, sink port.EventSink) error {
	err := s.client.XGroupCreateMkStream(ctx, s.stream, s.group, "$").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return fmt.Errorf("create group %s: %w", s.group, err)
	}

	cursor := "0"
	for {
		if ctx.Err() != nil {
			return nil
		}
		streams, err := s.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    s.group,
			Consumer: s.consumer,
			Streams:  []string{s.stream, cursor},
			Count:    s.batch,
			Block:    s.block,
		}).Result()
		switch {
		case errors.Is(err, redis.Nil):
			continue
		case err != nil:
			if ctx.Err() != nil {
				return nil
			}
			s.logger.Warn("stream read failed", slog.Any("error", err))
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(time.Second):
			}
			continue
		}

		n := 0
		for _, st := range streams {
			n += len(st.Messages)
			s.deliver(ctx, sink, st.Messages)
		}
		// Pending entries are exhausted once a read from "0" comes back empty.
		if cursor == "0" && n == 0 {
			cursor = ">"
		}
	}
}

func (s *EventStream) deliver(ctx context.Context, sink port.EventSink, msgs []redis.XMessage) {
	ids := make([]string, 0, len(msgs))
	for _, msg := range msgs {
		ids = append(ids, msg.ID)
		ev, err := parseEvent(msg.Values)
		if err != nil {
			s.logger.Warn("malformed spend event", slog.String("id", msg.ID), slog.Any("error", err))
			continue
		}
		if err = sink.Ingest(ctx, ev); err != nil {
			s.logger.Debug("spend event not applied",
				slog.String("id", msg.ID),
				slog.Int64("campaign_id", ev.CampaignID),
				slog.Any("error", err))
		}
	}
	if len(ids) == 0 {
		return
	}
	if err := s.client.XAck(context.WithoutCancel(ctx), s.stream, s.group, ids...).Err(); err != nil {
		s.logger.Warn("stream ack failed", slog.Int("entries", len(ids)), slog.Any("error", err))
	}
}

func parseEvent(values map[string]any) (domain.SpendEvent, error) {
	var ev domain.SpendEvent
	var err error
	if ev.CampaignID, err = intField(values, "campaign_id"); err != nil {
		return ev, err
	}
	if ev.Amount, err = intField(values, "amount"); err != nil {
		return ev, err
	}
	raw, ok := values["timestamp"].(string)
	if !ok || raw == "" {
		return ev, fmt.Errorf("%w: missing timestamp", port.ErrInvalidEvent)
	}
	if ms, perr := strconv.ParseInt(raw, 10, 64); perr == nil {
		ev.Timestamp = time.UnixMilli(ms).UTC()
	} else if ev.Timestamp, err = time.Parse(time.RFC3339Nano, raw); err != nil {
		return ev, fmt.Errorf("%w: timestamp %q", port.ErrInvalidEvent, raw)
	}
	for name, dst := range map[string]**int64{"clicks": &ev.Clicks, "conversions": &ev.Conversions} {
		if _, ok := values[name]; !ok {
			continue
		}
		v, err := intField(values, name)
		if err != nil {
			return ev, err
		}
		*dst = &v
	}
	return ev, nil
}

func intField(values map[string]any, name string) (int64, error) {
	raw, ok := values[name].(string)
	if !ok {
		return 0, fmt.Errorf("%w: missing %s", port.ErrInvalidEvent, name)
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", port.ErrInvalidEvent, name, raw)
	}
	return v, nil
}
