package testing

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type PGContainer struct {
	Container  testcontainers.Container
	ConnString string
}

// NewPGContainer starts a postgres test container, optionally seeded with an
// init SQL script, and registers cleanup on the test.
func NewPGContainer(ctx context.Context, tb testing.TB, initSQL string) *PGContainer {
	tb.Helper()

	opts := []testcontainers.ContainerCustomizer{
		postgres.WithDatabase("rankeval_test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30 * time.Second),
		),
	}

	if initSQL != "" {
		tmpFile, err := os.CreateTemp("", "init-*.sql")
		if err != nil {
			tb.Fatalf("failed to create init script: %v", err)
		}
		if _, err := tmpFile.WriteString(initSQL); err != nil {
			tb.Fatalf("failed to write init script: %v", err)
		}
		if err := tmpFile.Close(); err != nil {
			tb.Fatalf("failed to close init script: %v", err)
		}
		opts = append(opts, postgres.WithInitScripts(tmpFile.Name()))
	}

	pgContainer, err := postgres.Run(ctx, "postgres:17.5", opts...)
	if err != nil {
		tb.Fatalf("failed to start postgres container: %v", err)
	}

	tb.Cleanup(func() {
		if err := testcontainers.TerminateContainer(pgContainer); err != nil {
			tb.Logf("failed to terminate postgres container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		tb.Fatalf("failed to get connection string: %v", err)
	}

	return &PGContainer{
		Container:  pgContainer,
		ConnString: connStr,
	}
}
