package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdomain "github.com/light-bringer/aptmart-service/internal/app/catalog/domain"
	shopdomain "github.com/light-bringer/aptmart-service/internal/app/shop/domain"
	"github.com/light-bringer/aptmart-service/internal/pkg/money"
)

func TestDemoDataIsValid(t *testing.T) {
	keys := make(map[string]bool, len(demoApartments))
	for _, a := range demoApartments {
		assert.False(t, keys[a.Key], "duplicate apartment key %s", a.Key)
		keys[a.Key] = true
	}

	phones := make(map[string]bool, len(demoShops))
	for _, s := range demoShops {
		t.Run(s.Name, func(t *testing.T) {
			assert.False(t, phones[s.Phone], "duplicate seller phone")
			phones[s.Phone] = true

			_, err := shopdomain.ParseCategory(s.Category)
			require.NoError(t, err)
			_, err = catalogdomain.ParseKind(s.Type)
			require.NoError(t, err)

			for _, key := range s.Apartments {
				assert.True(t, keys[key], "unknown apartment key %s", key)
			}
			for _, l := range s.Listings {
				p, err := money.Parse(l.Price)
				require.NoError(t, err)
				assert.True(t, p.IsPositive())
			}
		})
	}
}

func TestRootCommandWiring(t *testing.T) {
	root := newRootCmd(&env{})

	for _, name := range []string{"seed", "cleanup-outbox", "events"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}

	cleanup, _, _ := root.Find([]string{"cleanup-outbox"})
	assert.NotNil(t, cleanup.Flags().Lookup("dry-run"))
}

func TestRootCommand_FailedSetupLeavesNothingOpen(t *testing.T) {
	t.Setenv("TOKEN_TTL", "forever")
	e := &env{}
	root := newRootCmd(e)
	root.SetArgs([]string{"events"})

	err := root.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Nil(t, root.PersistentPostRun)
	assert.Nil(t, e.client)

	assert.NotPanics(t, e.close)
	assert.NotPanics(t, e.close)
}
