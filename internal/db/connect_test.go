package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_SQLiteCreatesSchema(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, DriverSQLite, "file::memory:?cache=shared")
	require.NoError(t, err)
	defer db.Close()

	for _, table := range []string{"catalog_documents", "survey_datasets", "survey_groups"} {
		var name string
		err := db.QueryRowContext(ctx,
			`SELECT name FROM sqlite_master WHERE type='table' AND name=$1`, table).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}

	// idempotent
	require.NoError(t, ensureSchema(ctx, db, DriverSQLite))
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(context.Background(), Driver("mysql"), "")
	assert.ErrorContains(t, err, "unsupported driver")
}

func TestParseDriver(t *testing.T) {
	for in, want := range map[string]Driver{
		"":         DriverSQLite,
		"sqlite":   DriverSQLite,
		"postgres": DriverPostgres,
		"pgx":      DriverPostgres,
	} {
		got, err := ParseDriver(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseDriver("oracle")
	assert.Error(t, err)
}
