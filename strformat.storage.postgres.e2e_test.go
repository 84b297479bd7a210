//go:build integration

package strformat

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupPostgresContainer starts an ephemeral PostgreSQL and returns its DSN.
func setupPostgresContainer(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:15",
		postgres.WithDatabase("strformat_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err, "failed to start postgres container")
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "failed to get connection string")
	return connStr
}

func TestPostgresStorage_E2E(t *testing.T) {
	connStr := setupPostgresContainer(t)

	// every contract subtest gets its own tables
	prefixes := 0
	newStorage := func(t *testing.T) TemplateStorage {
		prefixes++
		storage, err := NewPostgresStorage(PostgresConfig{
			ConnectionString: connStr,
			AutoMigrate:      true,
			TablePrefix:      "t" + FormatNumber(prefixes, "03") + "_",
		})
		require.NoError(t, err)
		t.Cleanup(func() { _ = storage.Close() })
		return storage
	}

	t.Run("contract", func(t *testing.T) {
		testStorageContract(t, newStorage)
	})

	t.Run("migrations are idempotent", func(t *testing.T) {
		storage := newStorage(t).(*PostgresStorage)
		ctx := context.Background()

		require.NoError(t, storage.RunMigrations(ctx))
		version, err := storage.CurrentSchemaVersion(ctx)
		require.NoError(t, err)
		assert.Equal(t, len(storage.migrations()), version)
	})

	t.Run("open via registry", func(t *testing.T) {
		storage, err := OpenStorage(StorageDriverNamePostgres, connStr)
		require.NoError(t, err)
		defer storage.Close()

		exists, err := storage.Exists(context.Background(), "nothing")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("storage formatter round trip", func(t *testing.T) {
		sf := MustNewStorageFormatter(StorageFormatterConfig{Storage: newStorage(t)})
		ctx := context.Background()

		require.NoError(t, sf.Save(ctx, &StoredTemplate{Name: "receipt", Source: "{0}: {1:.2f}"}))
		out, err := sf.Format(ctx, "receipt", "total", 12.5)
		require.NoError(t, err)
		assert.Equal(t, "total: 12.50", out)
	})
}
