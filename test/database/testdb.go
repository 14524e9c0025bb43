// Package database provisions real PostgreSQL databases for integration
// tests. Every test gets its own schema inside one shared database: CI
// points CI_DATABASE_URL at a service container, local runs start a
// single testcontainer per package.
package database

import (
	"context"
	"crypto/rand"
	stdsql "database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/scriptor-ai/scriptor/ent"
	"github.com/scriptor-ai/scriptor/pkg/database"
)

var (
	sharedConnStr string
	containerOnce sync.Once
	containerErr  error
)

// NewTestClient returns a *database.Client bound to a fresh schema.
// Schema creation, ent auto-migration, the raw SQL indexes, and teardown
// are all handled here; the caller just uses the client.
func NewTestClient(t *testing.T) *database.Client {
	t.Helper()
	ctx := context.Background()

	schema := newSchemaName(t)
	createSchema(t, baseConnString(t), schema)

	db, err := stdsql.Open("pgx", withSearchPath(baseConnString(t), schema))
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))
	require.NoError(t, entClient.Schema.Create(ctx))

	// Auto-migration cannot express these; production gets them from the
	// SQL migration files.
	require.NoError(t, database.CreateGINIndexes(ctx, drv))
	require.NoError(t, database.CreatePartialIndexes(ctx, drv))

	t.Cleanup(func() {
		dropSchema(t, db, schema)
		_ = entClient.Close()
		_ = db.Close()
	})

	return database.NewClientFromEnt(entClient, db)
}

func createSchema(t *testing.T, connStr, schema string) {
	t.Helper()
	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	_, err = db.ExecContext(context.Background(), fmt.Sprintf("CREATE SCHEMA %s", schema))
	require.NoError(t, err)
}

func dropSchema(t *testing.T, db *stdsql.DB, schema string) {
	t.Helper()
	_, err := db.ExecContext(context.Background(), fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", schema))
	if err != nil {
		t.Logf("failed to drop schema %s: %v", schema, err)
	}
}

// baseConnString returns the connection string of the shared database,
// without a search_path. CI_DATABASE_URL wins; otherwise the package's
// shared testcontainer is started on first use.
func baseConnString(t *testing.T) string {
	if fromCI := os.Getenv("CI_DATABASE_URL"); fromCI != "" {
		return fromCI
	}

	containerOnce.Do(func() {
		ctx := context.Background()
		t.Log("Starting shared PostgreSQL testcontainer")

		container, err := postgres.Run(ctx,
			"postgres:17-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			postgres.WithInitScripts(initScriptPath()),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		if err != nil {
			containerErr = fmt.Errorf("starting postgres container: %w", err)
			return
		}
		sharedConnStr, containerErr = container.ConnectionString(ctx, "sslmode=disable")
	})

	require.NoError(t, containerErr, "shared test database unavailable")
	return sharedConnStr
}

// newSchemaName derives a unique PostgreSQL-safe schema name from the
// test name plus a random suffix, under the 63-char identifier limit.
func newSchemaName(t *testing.T) string {
	name := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, strings.ToLower(t.Name()))
	if len(name) > 40 {
		name = name[:40]
	}

	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		t.Fatalf("generating schema suffix: %v", err)
	}
	return fmt.Sprintf("test_%s_%s", name, hex.EncodeToString(suffix))
}

// withSearchPath pins every pooled connection to the given schema.
func withSearchPath(connStr, schema string) string {
	sep := "?"
	if strings.Contains(connStr, "?") {
		sep = "&"
	}
	return connStr + sep + "search_path=" + schema
}

// initScriptPath resolves deploy/postgres-init/01-init.sql relative to
// this source file, so it works from any package's test binary.
func initScriptPath() string {
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		panic("initScriptPath: runtime.Caller failed")
	}
	root := filepath.Dir(filepath.Dir(filepath.Dir(thisFile)))
	return filepath.Join(root, "deploy", "postgres-init", "01-init.sql")
}
