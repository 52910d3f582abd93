// Package committer applies commit plans to Spanner.
//
// Repositories never write. They return mutations, the use case collects them (aggregate rows
// plus one outbox row per domain event) into a CommitPlan, and the committer applies the whole
// plan in a single transaction:
//
//	plan := committer.NewPlan()
//	plan.Add(shopRepo.UpdateMut(shop))
//	if err := events.Stage(plan, outbox, shop.DomainEvents()); err != nil {
//	    return err
//	}
//	return committer.Apply(ctx, plan)
package committer

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"
)

var (
	// ErrVersionConflict is returned when the stored version differs from the expected one.
	ErrVersionConflict = errors.New("version conflict: row was modified concurrently")
	// ErrAlreadyExists is returned when an insert collides with an existing key or unique index.
	ErrAlreadyExists = errors.New("row already exists")
	// ErrRowNotFound is returned when a guarded row no longer exists.
	ErrRowNotFound = errors.New("row not found")
)

// CommitPlan collects mutations from multiple repositories to be applied atomically.
type CommitPlan struct {
	mutations []*spanner.Mutation
}

// NewPlan creates a new empty CommitPlan.
func NewPlan() *CommitPlan {
	return &CommitPlan{
		mutations: make([]*spanner.Mutation, 0),
	}
}

// Add adds a mutation to the plan. Nil mutations are ignored.
func (cp *CommitPlan) Add(mut *spanner.Mutation) {
	if mut != nil {
		cp.mutations = append(cp.mutations, mut)
	}
}

// AddMultiple adds multiple mutations to the plan.
func (cp *CommitPlan) AddMultiple(muts []*spanner.Mutation) {
	for _, mut := range muts {
		cp.Add(mut)
	}
}

// Mutations returns all collected mutations.
func (cp *CommitPlan) Mutations() []*spanner.Mutation {
	return cp.mutations
}

// IsEmpty returns true if the plan has no mutations.
func (cp *CommitPlan) IsEmpty() bool {
	return len(cp.mutations) == 0
}

// Count returns the number of mutations in the plan.
func (cp *CommitPlan) Count() int {
	return len(cp.mutations)
}

// VersionGuard identifies the row whose version column must still equal Expected at commit time.
type VersionGuard struct {
	Table    string
	Key      spanner.Key
	Expected int64
}

// Applier is the write side every use case depends on.
type Applier interface {
	Apply(ctx context.Context, plan *CommitPlan) error
	ApplyWithVersionCheck(ctx context.Context, guard VersionGuard, plan *CommitPlan) error
}

// Committer applies CommitPlans with a Spanner client.
type Committer struct {
	client *spanner.Client
}

// NewCommitter creates a new Committer.
func NewCommitter(client *spanner.Client) *Committer {
	return &Committer{client: client}
}

// Apply executes the CommitPlan atomically.
func (c *Committer) Apply(ctx context.Context, plan *CommitPlan) error {
	if plan.IsEmpty() {
		return nil
	}

	if _, err := c.client.Apply(ctx, plan.Mutations()); err != nil {
		return fmt.Errorf("failed to apply commit plan: %w", translate(err))
	}

	return nil
}

// ApplyWithVersionCheck executes the CommitPlan inside a read-write transaction after checking
// that the guarded row still carries the expected version.
// A guard with Expected <= 0 skips the check.
func (c *Committer) ApplyWithVersionCheck(ctx context.Context, guard VersionGuard, plan *CommitPlan) error {
	if plan.IsEmpty() {
		return nil
	}
	if guard.Expected <= 0 {
		return c.Apply(ctx, plan)
	}

	_, err := c.client.ReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		row, err := txn.ReadRow(ctx, guard.Table, guard.Key, []string{"version"})
		if err != nil {
			if spanner.ErrCode(err) == codes.NotFound {
				return ErrRowNotFound
			}
			return fmt.Errorf("failed to read %s version: %w", guard.Table, err)
		}

		var current int64
		if err := row.Column(0, &current); err != nil {
			return fmt.Errorf("failed to parse version: %w", err)
		}

		if current != guard.Expected {
			return fmt.Errorf("%w: expected %d, got %d", ErrVersionConflict, guard.Expected, current)
		}

		return txn.BufferWrite(plan.Mutations())
	})
	if err != nil {
		return fmt.Errorf("failed to apply commit plan with version check: %w", translate(err))
	}

	return nil
}

// translate maps Spanner status codes onto package sentinels, keeping the original error wrapped.
func translate(err error) error {
	if errors.Is(err, ErrVersionConflict) || errors.Is(err, ErrRowNotFound) {
		return err
	}
	switch spanner.ErrCode(err) {
	case codes.AlreadyExists:
		return fmt.Errorf("%w: %v", ErrAlreadyExists, err)
	case codes.NotFound:
		return fmt.Errorf("%w: %v", ErrRowNotFound, err)
	}
	return err
}
