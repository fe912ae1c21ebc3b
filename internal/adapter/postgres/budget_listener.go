package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"

	"mesa-pacing/internal/core/port"
)

// BudgetListener implements port.ConfigWatcher with PostgreSQL
// LISTEN/NOTIFY. The campaign_budgets trigger sends the campaign ID as the
// notification payload.
type BudgetListener struct {
	dsn     string
	channel string
	logger  *slog.Logger
}

// NewBudgetListener returns a listener on channel.
func NewBudgetListener(dsn, channel string, logger *slog.Logger) *BudgetListener {
	return &BudgetListener{dsn: dsn, channel: channel, logger: logger}
}

// Watch reconciles every notified campaign until ctx is done. After a
// reconnect, notifications may have been lost, so all configs are synced.
func (l *BudgetListener) Watch(ctx context.Context, h port.ConfigChangeHandler) error {
	listener := pq.NewListener(l.dsn, time.Second, time.Minute, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			l.logger.Warn("budget listener connection event", slog.Int("event", int(ev)), slog.Any("error", err))
		}
	})
	defer listener.Close()

	if err := listener.Listen(l.channel); err != nil {
		return fmt.Errorf("listen %s: %w", l.channel, err)
	}
	l.logger.Info("listening for budget changes", slog.String("channel", l.channel))

	keepalive := time.NewTicker(90 * time.Second)
	defer keepalive.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case n := <-listener.Notify:
			if n == nil {
				l.logger.Info("budget listener reconnected, resyncing configs")
				if err := h.SyncConfigs(ctx); err != nil {
					l.logger.Warn("config resync incomplete", slog.Any("error", err))
				}
				continue
			}
			id, err := parseCampaignID(n.Extra)
			if err != nil {
				l.logger.Warn("malformed budget notification", slog.String("payload", n.Extra), slog.Any("error", err))
				continue
			}
			if err = h.Reconcile(ctx, id); err != nil {
				l.logger.Warn("reconcile failed", slog.Int64("campaign_id", id), slog.Any("error", err))
			}
		case <-keepalive.C:
			go func() {
				if err := listener.Ping(); err != nil {
					l.logger.Debug("budget listener ping failed", slog.Any("error", err))
				}
			}()
		}
	}
}

func parseCampaignID(payload string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(payload), 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, fmt.Errorf("campaign id %d not positive", id)
	}
	return id, nil
}
