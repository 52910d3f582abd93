package cleanup_events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/aptmart-service/internal/app/outbox/contracts"
	"github.com/light-bringer/aptmart-service/internal/app/outbox/repo"
	"github.com/light-bringer/aptmart-service/internal/pkg/clock"
	"github.com/light-bringer/aptmart-service/internal/pkg/logging"
)

type retentionRepo struct {
	*repo.OutboxRepo
	counts          contracts.RetentionCount
	completedCutoff time.Time
	failedCutoff    time.Time
	deleteCalls     int
}

func (r *retentionRepo) CountExpired(_ context.Context, completedBefore, failedBefore time.Time) (contracts.RetentionCount, error) {
	r.completedCutoff, r.failedCutoff = completedBefore, failedBefore
	return r.counts, nil
}

func (r *retentionRepo) DeleteExpired(context.Context, time.Time, time.Time) (int64, error) {
	r.deleteCalls++
	return r.counts.Total(), nil
}

var now = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func newInteractor(r contracts.OutboxRepository) *Interactor {
	return NewInteractor(r, clock.NewMockClock(now), logging.NewNop())
}

func TestExecute_DeletesExpired(t *testing.T) {
	r := &retentionRepo{OutboxRepo: repo.NewOutboxRepo(nil), counts: contracts.RetentionCount{Completed: 7, Failed: 2}}

	res, err := newInteractor(r).Execute(context.Background(), &Request{
		CompletedRetention: 720 * time.Hour,
		FailedRetention:    2160 * time.Hour,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(9), res.Deleted)
	assert.Equal(t, 1, r.deleteCalls)
	assert.Equal(t, now.Add(-720*time.Hour), r.completedCutoff)
	assert.Equal(t, now.Add(-2160*time.Hour), r.failedCutoff)
}

func TestExecute_DryRun(t *testing.T) {
	r := &retentionRepo{OutboxRepo: repo.NewOutboxRepo(nil), counts: contracts.RetentionCount{Completed: 3}}

	res, err := newInteractor(r).Execute(context.Background(), &Request{
		CompletedRetention: time.Hour,
		FailedRetention:    time.Hour,
		DryRun:             true,
	})
	require.NoError(t, err)

	assert.True(t, res.DryRun)
	assert.Equal(t, int64(3), res.Expired.Completed)
	assert.Zero(t, res.Deleted)
	assert.Zero(t, r.deleteCalls)
}

func TestExecute_NothingExpired(t *testing.T) {
	r := &retentionRepo{OutboxRepo: repo.NewOutboxRepo(nil)}

	_, err := newInteractor(r).Execute(context.Background(), &Request{CompletedRetention: time.Hour, FailedRetention: time.Hour})
	require.NoError(t, err)
	assert.Zero(t, r.deleteCalls)
}

func TestExecute_InvalidRetention(t *testing.T) {
	_, err := newInteractor(&retentionRepo{OutboxRepo: repo.NewOutboxRepo(nil)}).Execute(context.Background(), &Request{})
	assert.Error(t, err)
}
