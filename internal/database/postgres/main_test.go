package postgres

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/crimson/internal/database"
)

var (
	testDBConnString string
	testPool         *pgxpool.Pool
)

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()
	if !testing.Short() {
		terminate = setupDatabase(context.Background())
	}

	code := m.Run()

	if testPool != nil {
		testPool.Close()
	}
	if terminate != nil {
		terminate()
	}
	os.Exit(code)
}

// setupDatabase starts Postgres, applies the migrations and opens testPool.
// Any failure leaves testPool nil so integration tests skip.
func setupDatabase(ctx context.Context) func() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupDatabase: %v\n", r)
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("nephthys"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return func() {}
	}
	terminate := func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		return terminate
	}

	if _, err := database.Migrate(ctx, connStr); err != nil {
		fmt.Printf("WARNING: Failed to apply migrations: %v\n", err)
		return terminate
	}

	pool, err := database.NewPool(ctx, database.PoolConfig{ConnString: connStr})
	if err != nil {
		fmt.Printf("WARNING: Failed to connect: %v\n", err)
		return terminate
	}

	testDBConnString = connStr
	testPool = pool
	return terminate
}

func requireDatabase(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testPool == nil {
		t.Skip("Skipping integration test: database not available")
	}
	return testPool
}

// resetTickets empties both tables between tests
func resetTickets(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(), `TRUNCATE "Ticket", "User" RESTART IDENTITY CASCADE`)
	if err != nil {
		t.Fatalf("failed to reset tables: %v", err)
	}
}

// insertUser creates a user and returns their id
func insertUser(t *testing.T, pool *pgxpool.Pool, slackID string, helper bool) int {
	t.Helper()
	var id int
	err := pool.QueryRow(context.Background(),
		`INSERT INTO "User" ("slackId", "helper") VALUES ($1, $2) RETURNING "id"`, slackID, helper).Scan(&id)
	if err != nil {
		t.Fatalf("failed to insert user %s: %v", slackID, err)
	}
	return id
}

// closeTicket records a ticket closed by userID at closedAt
func closeTicket(t *testing.T, pool *pgxpool.Pool, userID int, closedAt time.Time) {
	t.Helper()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO "Ticket" ("closedById", "closedAt") VALUES ($1, $2)`, userID, closedAt)
	if err != nil {
		t.Fatalf("failed to insert ticket: %v", err)
	}
}
