package postgres

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/agentdir/directory/internal/store"
	"github.com/agentdir/directory/internal/store/storetest"
)

// makePGStore returns a postgres-backed store. It prefers an explicit DSN
// (DIRECTORY_POSTGRES_TEST_DSN); otherwise it starts a disposable container
// when DIRECTORY_TEST_WITH_DOCKER=true, and skips if neither is available.
func makePGStore(t *testing.T) store.Store {
	t.Helper()

	dsn := os.Getenv("DIRECTORY_POSTGRES_TEST_DSN")
	if dsn == "" {
		if os.Getenv("DIRECTORY_TEST_WITH_DOCKER") != "true" {
			t.Skip("DIRECTORY_POSTGRES_TEST_DSN not set; skipping postgres store integration test")
		}
		dsn = startPostgres(t)
	}

	db, err := Open(dsn)
	if err != nil {
		t.Fatalf("postgres open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := EnsureSchema(context.Background(), db); err != nil {
		t.Fatalf("postgres schema: %v", err)
	}
	return NewWithDB(db)
}

func startPostgres(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "directory",
			"POSTGRES_PASSWORD": "directory",
			"POSTGRES_DB":       "directory_test",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).WithStartupTimeout(60 * time.Second),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("start postgres container: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("container port: %v", err)
	}
	return fmt.Sprintf("postgres://directory:directory@%s:%s/directory_test?sslmode=disable", host, port.Port())
}

func TestPostgresStore_Compliance(t *testing.T) {
	storetest.Run(t, makePGStore)
}
