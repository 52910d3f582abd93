package cache

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storefront struct {
	Apartment string   `json:"apartment"`
	Shops     []string `json:"shops"`
}

func TestNop(t *testing.T) {
	var c Cache = Nop{}
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", storefront{}, time.Second))
	var got storefront
	assert.ErrorIs(t, c.Get(ctx, "k", &got), ErrMiss)
	assert.NoError(t, c.Delete(ctx, "k"))
}

func TestMemory_RoundTrip(t *testing.T) {
	var c Cache = NewMemory()
	ctx := context.Background()

	in := storefront{Apartment: "Skyline Residences", Shops: []string{"Fresh Mart"}}
	require.NoError(t, c.Set(ctx, "storefront:a1", in, time.Minute))

	var out storefront
	require.NoError(t, c.Get(ctx, "storefront:a1", &out))
	assert.Equal(t, in, out)

	require.NoError(t, c.Delete(ctx, "storefront:a1"))
	assert.ErrorIs(t, c.Get(ctx, "storefront:a1", &out), ErrMiss)
}

func TestRedis_UnreachableServer(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	c := NewRedis(client, "aptmart:")
	defer c.Close()

	var out storefront
	err := c.Get(context.Background(), "storefront:a1", &out)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMiss)
}
