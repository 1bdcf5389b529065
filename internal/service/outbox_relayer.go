package service

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"minbar/internal/model"
	"minbar/internal/pkg"
	"minbar/internal/repository/mysql"

	"gorm.io/gorm"
)

// Sender delivers one drained outbox row to the downstream transport.
type Sender func(ctx context.Context, ob *model.ModerationOutbox) error

// OutboxRelayer drains pending moderation events from the outbox table
// and hands them to a Sender, marking each row sent or retried.
type OutboxRelayer struct {
	repo      *mysql.OutboxRepository
	batchSize int
	interval  time.Duration
	maxRetry  int
	sender    Sender
}

func NewOutboxRelayer(db *gorm.DB, sender Sender) *OutboxRelayer {
	return &OutboxRelayer{
		repo:      &mysql.OutboxRepository{DB: db},
		batchSize: 200,
		interval:  time.Second,
		maxRetry:  10,
		sender:    sender,
	}
}

func (r *OutboxRelayer) Run(ctx context.Context) {
	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.drainOnce(ctx)
		}
	}
}

func (r *OutboxRelayer) drainOnce(ctx context.Context) {
	rows, err := r.repo.ListPending(ctx, r.batchSize)
	if err != nil {
		slog.Error("outbox query failed", "error", err)
		return
	}
	for i := range rows {
		ob := rows[i]
		if err := r.sender(ctx, &ob); err != nil {
			slog.Warn("outbox send failed", "id", ob.ID, "error", err)
			_ = r.repo.MarkRetry(ctx, ob.ID, r.maxRetry)
			continue
		}
		_ = r.repo.MarkSent(ctx, ob.ID)
	}
}

// KafkaSender publishes outbox rows keyed by submission id.
func KafkaSender(producer *pkg.KafkaProducer) Sender {
	return func(ctx context.Context, ob *model.ModerationOutbox) error {
		return producer.Send(ctx, ob.SubmissionID, []byte(ob.Payload))
	}
}

// LogSender is the fallback when no brokers are configured.
func LogSender(ctx context.Context, ob *model.ModerationOutbox) error {
	slog.Info("moderation event",
		"id", strconv.FormatUint(ob.ID, 10),
		"event", ob.EventType,
		"section", ob.Section,
		"submission_id", ob.SubmissionID,
		"post_id", ob.PostID,
	)
	return nil
}
