package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitDDLStatements(t *testing.T) {
	got := splitDDLStatements(`
-- apartments
CREATE TABLE apartments (
  apartment_id STRING(36) NOT NULL,
) PRIMARY KEY (apartment_id);

   -- coverage lookup
CREATE INDEX shop_apartments_by_apartment ON shop_apartments(apartment_id);
`)

	require.Len(t, got, 2)
	assert.Equal(t, "CREATE TABLE apartments (\napartment_id STRING(36) NOT NULL,\n) PRIMARY KEY (apartment_id)", got[0])
	assert.Equal(t, "CREATE INDEX shop_apartments_by_apartment ON shop_apartments(apartment_id)", got[1])
}

func TestSplitDDLStatements_InitialSchema(t *testing.T) {
	content, err := os.ReadFile("../../migrations/001_initial_schema.sql")
	require.NoError(t, err)

	stmts := splitDDLStatements(string(content))
	assert.NotEmpty(t, stmts)
	for _, s := range stmts {
		assert.NotContains(t, s, "--")
	}
}

func TestOptionsPaths(t *testing.T) {
	o := options{projectID: "p", instanceID: "i", databaseID: "aptmart-db"}
	assert.Equal(t, "projects/p/instances/i/databases/aptmart-db", o.databasePath())
}
