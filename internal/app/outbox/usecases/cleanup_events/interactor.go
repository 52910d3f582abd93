package cleanup_events

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/light-bringer/aptmart-service/internal/app/outbox/contracts"
	"github.com/light-bringer/aptmart-service/internal/pkg/clock"
)

// Request configures one cleanup run.
type Request struct {
	CompletedRetention time.Duration
	FailedRetention    time.Duration
	DryRun             bool
}

// Result reports what was (or would be) deleted.
type Result struct {
	CompletedCutoff time.Time
	FailedCutoff    time.Time
	Expired         contracts.RetentionCount
	Deleted         int64
	DryRun          bool
}

// Interactor deletes outbox rows past their retention.
type Interactor struct {
	repo  contracts.OutboxRepository
	clock clock.Clock
	log   logrus.FieldLogger
}

// NewInteractor creates a new cleanup interactor.
func NewInteractor(repo contracts.OutboxRepository, clock clock.Clock, log logrus.FieldLogger) *Interactor {
	return &Interactor{repo: repo, clock: clock, log: log}
}

// Execute counts expired events and deletes them unless DryRun is set.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Result, error) {
	if req.CompletedRetention <= 0 || req.FailedRetention <= 0 {
		return nil, fmt.Errorf("retention periods must be positive")
	}

	now := i.clock.Now()
	res := &Result{
		CompletedCutoff: now.Add(-req.CompletedRetention),
		FailedCutoff:    now.Add(-req.FailedRetention),
		DryRun:          req.DryRun,
	}

	counts, err := i.repo.CountExpired(ctx, res.CompletedCutoff, res.FailedCutoff)
	if err != nil {
		return nil, err
	}
	res.Expired = counts

	entry := i.log.WithFields(logrus.Fields{
		"completed": counts.Completed,
		"failed":    counts.Failed,
		"dry_run":   req.DryRun,
	})

	if req.DryRun || counts.Total() == 0 {
		entry.Info("outbox cleanup: nothing deleted")
		return res, nil
	}

	deleted, err := i.repo.DeleteExpired(ctx, res.CompletedCutoff, res.FailedCutoff)
	if err != nil {
		return nil, err
	}
	res.Deleted = deleted
	entry.WithField("deleted", deleted).Info("outbox cleanup finished")
	return res, nil
}
