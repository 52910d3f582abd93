package committer

import (
	"errors"
	"fmt"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
)

func TestCommitPlan_IgnoresNilMutations(t *testing.T) {
	plan := NewPlan()
	assert.True(t, plan.IsEmpty())

	plan.Add(nil)
	assert.True(t, plan.IsEmpty())

	plan.Add(spanner.Delete("apartments", spanner.Key{"apt-1"}))
	plan.AddMultiple([]*spanner.Mutation{
		nil,
		spanner.Delete("shop_apartments", spanner.Key{"shop-1", "apt-1"}),
	})

	assert.False(t, plan.IsEmpty())
	assert.Equal(t, 2, plan.Count())
	assert.Len(t, plan.Mutations(), 2)
}

func TestTranslate_KeepsSentinels(t *testing.T) {
	conflict := fmt.Errorf("%w: expected 2, got 3", ErrVersionConflict)
	assert.True(t, errors.Is(translate(conflict), ErrVersionConflict))
	assert.True(t, errors.Is(translate(ErrRowNotFound), ErrRowNotFound))

	plain := errors.New("boom")
	assert.Equal(t, plain, translate(plain))
}
