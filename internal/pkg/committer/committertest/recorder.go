// Package committertest provides an in-memory committer.Applier for use case tests.
package committertest

import (
	"context"
	"sync"

	"github.com/light-bringer/aptmart-service/internal/pkg/committer"
)

// Recorder records every applied plan instead of writing to Spanner.
type Recorder struct {
	mu     sync.Mutex
	Plans  []*committer.CommitPlan
	Guards []committer.VersionGuard

	// Err, when set, is returned from every apply call and nothing is recorded.
	Err error
}

// New creates an empty Recorder.
func New() *Recorder {
	return &Recorder{}
}

// Apply records the plan.
func (r *Recorder) Apply(_ context.Context, plan *committer.CommitPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.Plans = append(r.Plans, plan)
	return nil
}

// ApplyWithVersionCheck records the guard and the plan.
func (r *Recorder) ApplyWithVersionCheck(_ context.Context, guard committer.VersionGuard, plan *committer.CommitPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.Guards = append(r.Guards, guard)
	r.Plans = append(r.Plans, plan)
	return nil
}

// Last returns the most recently applied plan, or nil.
func (r *Recorder) Last() *committer.CommitPlan {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Plans) == 0 {
		return nil
	}
	return r.Plans[len(r.Plans)-1]
}

// Calls returns how many plans were applied.
func (r *Recorder) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Plans)
}
