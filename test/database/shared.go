package database

import (
	"context"
	stdsql "database/sql"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"

	"github.com/scriptor-ai/scriptor/ent"
	"github.com/scriptor-ai/scriptor/pkg/database"
)

// SharedTestDB is one schema shared by multiple simulated replicas. Each
// replica gets its own connection pool via NewClient, but all pools point
// at the same schema, which is what cross-replica NOTIFY/LISTEN tests
// need.
type SharedTestDB struct {
	connStrWithSchema string
	schemaName        string
}

// NewSharedTestDB creates the shared schema, migrates it once, and
// registers cleanup to drop it after every replica has shut down.
func NewSharedTestDB(t *testing.T) *SharedTestDB {
	t.Helper()
	ctx := context.Background()

	schema := newSchemaName(t)
	createSchema(t, baseConnString(t), schema)

	connStr := withSearchPath(baseConnString(t), schema)
	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))
	require.NoError(t, entClient.Schema.Create(ctx))
	require.NoError(t, database.CreateGINIndexes(ctx, drv))
	require.NoError(t, database.CreatePartialIndexes(ctx, drv))

	// The migration client is done; replicas open their own pools.
	_ = entClient.Close()

	// Cleanup order is LIFO, so replica clients registered later close
	// before the schema drops.
	t.Cleanup(func() {
		dropSchema(t, db, schema)
		_ = db.Close()
	})

	return &SharedTestDB{connStrWithSchema: connStr, schemaName: schema}
}

// NewClient opens an independent pool onto the shared schema, so one
// replica can be torn down without racing the others.
func (s *SharedTestDB) NewClient(t *testing.T) *database.Client {
	t.Helper()

	db, err := stdsql.Open("pgx", s.connStrWithSchema)
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	t.Cleanup(func() {
		_ = entClient.Close()
		_ = db.Close()
	})

	return database.NewClientFromEnt(entClient, db)
}

// ConnString returns the schema-scoped connection string for tests that
// need a dedicated connection outside the pool, like the notify
// listener.
func (s *SharedTestDB) ConnString() string {
	return s.connStrWithSchema
}
