package relay_events

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/light-bringer/aptmart-service/internal/app/outbox/contracts"
	"github.com/light-bringer/aptmart-service/internal/pkg/clock"
	"github.com/light-bringer/aptmart-service/internal/pkg/committer"
)

const (
	DefaultBatchSize  = 100
	DefaultMaxRetries = 5
)

// Recorder counts relay outcomes.
type Recorder interface {
	OutboxRelayed(outcome string)
}

// Interactor drains pending outbox events into publishers.
type Interactor struct {
	repo       contracts.OutboxRepository
	committer  committer.Applier
	publishers []contracts.Publisher
	clock      clock.Clock
	log        logrus.FieldLogger
	recorder   Recorder
	batchSize  int
	maxRetries int64
}

// NewInteractor creates a relay. recorder may be nil.
func NewInteractor(
	repo contracts.OutboxRepository,
	committer committer.Applier,
	publishers []contracts.Publisher,
	clock clock.Clock,
	log logrus.FieldLogger,
	recorder Recorder,
) *Interactor {
	return &Interactor{
		repo:       repo,
		committer:  committer,
		publishers: publishers,
		clock:      clock,
		log:        log,
		recorder:   recorder,
		batchSize:  DefaultBatchSize,
		maxRetries: DefaultMaxRetries,
	}
}

// Run relays events every interval until ctx is cancelled.
func (i *Interactor) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if _, err := i.Execute(ctx); err != nil && ctx.Err() == nil {
			i.log.WithError(err).Warn("outbox relay pass failed")
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Execute performs one relay pass and returns the number of events handled.
func (i *Interactor) Execute(ctx context.Context) (int, error) {
	pending, err := i.repo.ListPending(ctx, i.batchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to list pending events: %w", err)
	}
	if len(pending) == 0 {
		return 0, nil
	}

	now := i.clock.Now()
	plan := committer.NewPlan()
	outcomes := make([]string, 0, len(pending))

	for _, evt := range pending {
		n := contracts.Notification{
			EventID:     evt.EventID,
			EventType:   evt.EventType,
			AggregateID: evt.AggregateID,
			OccurredAt:  evt.CreatedAt,
			Payload:     evt.Payload,
		}

		if err := i.publish(ctx, n); err != nil {
			retries := evt.RetryCount + 1
			entry := i.log.WithError(err).WithField("event_id", evt.EventID).WithField("retry_count", retries)
			if retries >= i.maxRetries {
				plan.Add(i.repo.FailedMut(evt.EventID, retries, now, err.Error()))
				outcomes = append(outcomes, "failed")
				entry.Error("outbox event failed permanently")
			} else {
				plan.Add(i.repo.RetryMut(evt.EventID, retries, err.Error()))
				outcomes = append(outcomes, "retried")
				entry.Warn("outbox event delivery failed, will retry")
			}
			continue
		}

		plan.Add(i.repo.CompletedMut(evt.EventID, now))
		outcomes = append(outcomes, "completed")
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		return 0, fmt.Errorf("failed to commit relay results: %w", err)
	}
	for _, o := range outcomes {
		i.record(o)
	}
	return len(pending), nil
}

func (i *Interactor) publish(ctx context.Context, n contracts.Notification) error {
	for _, p := range i.publishers {
		if err := p.Publish(ctx, n); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interactor) record(outcome string) {
	if i.recorder != nil {
		i.recorder.OutboxRelayed(outcome)
	}
}
