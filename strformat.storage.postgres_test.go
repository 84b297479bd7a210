package strformat

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPostgresConfig(t *testing.T) {
	config := DefaultPostgresConfig()

	assert.Equal(t, PostgresDefaultMaxOpenConns, config.MaxOpenConns)
	assert.Equal(t, PostgresDefaultMaxIdleConns, config.MaxIdleConns)
	assert.Equal(t, PostgresDefaultConnMaxLifetime, config.ConnMaxLifetime)
	assert.Equal(t, PostgresDefaultConnMaxIdleTime, config.ConnMaxIdleTime)
	assert.Equal(t, PostgresTablePrefix, config.TablePrefix)
	assert.Equal(t, PostgresDefaultQueryTimeout, config.QueryTimeout)
	assert.False(t, config.AutoMigrate)
}

func TestPostgresConfig_WithDefaults(t *testing.T) {
	config := PostgresConfig{MaxOpenConns: 3, QueryTimeout: time.Second}.withDefaults()

	assert.Equal(t, 3, config.MaxOpenConns)
	assert.Equal(t, time.Second, config.QueryTimeout)
	assert.Equal(t, PostgresDefaultMaxIdleConns, config.MaxIdleConns)
	assert.Equal(t, PostgresTablePrefix, config.TablePrefix)
}

func TestNewPostgresStorage_EmptyConnectionString(t *testing.T) {
	_, err := NewPostgresStorage(PostgresConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgPostgresEmptyConnString)
}

func TestPostgresStorage_TableNames(t *testing.T) {
	s := &PostgresStorage{config: PostgresConfig{TablePrefix: "app_"}}
	assert.Equal(t, `"app_templates"`, s.templatesTable())
	assert.Equal(t, `"app_schema_migrations"`, s.migrationsTable())

	migrations := s.migrations()
	require.NotEmpty(t, migrations)
	for i, m := range migrations {
		assert.Equal(t, i+1, m.Version)
		assert.Contains(t, m.SQL, `"app_templates"`)
	}
}

func TestPostgresStorage_BuildListQuery(t *testing.T) {
	s := &PostgresStorage{config: DefaultPostgresConfig()}

	t.Run("latest versions without filters", func(t *testing.T) {
		query, args := s.buildListQuery(&TemplateQuery{})
		assert.Contains(t, query, "DISTINCT ON (name)")
		assert.NotContains(t, query, "WHERE")
		assert.True(t, strings.HasSuffix(query, "ORDER BY name ASC, version DESC"))
		assert.Empty(t, args)
	})

	t.Run("all filters", func(t *testing.T) {
		query, args := s.buildListQuery(&TemplateQuery{
			NamePrefix:         "inv",
			NameContains:       "total",
			CreatedBy:          "ada",
			Tags:               []string{"billing"},
			Limit:              10,
			Offset:             5,
			IncludeAllVersions: true,
		})
		assert.NotContains(t, query, "DISTINCT ON")
		assert.Contains(t, query, "starts_with(name, $1)")
		assert.Contains(t, query, "strpos(name, $2) > 0")
		assert.Contains(t, query, "created_by = $3")
		assert.Contains(t, query, "tags @> $4")
		assert.Contains(t, query, "LIMIT $5")
		assert.Contains(t, query, "OFFSET $6")
		require.Len(t, args, 6)
		assert.Equal(t, "inv", args[0])
		assert.Equal(t, 10, args[4])
	})
}

func TestIsRetryablePostgresError(t *testing.T) {
	assert.True(t, isRetryablePostgresError(&pq.Error{Code: PostgresCodeUniqueViolation}))
	assert.True(t, isRetryablePostgresError(&pq.Error{Code: PostgresCodeSerialization}))
	assert.False(t, isRetryablePostgresError(&pq.Error{Code: "42P01"}))
	assert.False(t, isRetryablePostgresError(errors.New("plain")))
}

func TestNullString(t *testing.T) {
	assert.False(t, nullString("").Valid)
	assert.True(t, nullString("x").Valid)
}
