// Package testutils provides database helpers for integration tests.
//
// Integration tests run each scenario inside a transaction that is rolled
// back when the test finishes, so tests stay isolated and need no manual
// cleanup. Tests that need a database skip themselves when DATABASE_URL is
// not set.
package testutils

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/stretchr/testify/require"

	"github.com/placeshare/places-api/internal/store"
)

// IsIntegrationTestEnvironment reports whether a test database is
// configured for this run.
func IsIntegrationTestEnvironment() bool {
	return os.Getenv("DATABASE_URL") != ""
}

// GetTestDB opens a connection to the test database configured via
// DATABASE_URL.
func GetTestDB() (*sql.DB, error) {
	db, err := sql.Open("pgx", os.Getenv("DATABASE_URL"))
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// AssertCloseNoError closes c and fails the test if closing errors.
func AssertCloseNoError(t *testing.T, c interface{ Close() error }) {
	t.Helper()
	require.NoError(t, c.Close())
}

// WithTx runs fn inside a transaction that is always rolled back, keeping
// the database pristine between tests.
func WithTx(t *testing.T, db *sql.DB, fn func(tx store.DBTX)) {
	t.Helper()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err, "failed to begin test transaction")

	defer func() {
		require.NoError(t, tx.Rollback(), "failed to roll back test transaction")
	}()

	fn(tx)
}

// MustInsertUser inserts a user row directly and returns its ID.
func MustInsertUser(ctx context.Context, t *testing.T, tx store.DBTX, email string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	now := time.Now().UTC()
	_, err := tx.ExecContext(ctx,
		`INSERT INTO users (id, name, email, hashed_password, image_path, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, '', $5, $5)`,
		id, "Test User", email, "$2a$04$testhashtesthashtesthash", now)
	require.NoError(t, err, "failed to insert test user")

	return id
}

// MustInsertPlace inserts a place row plus its owner-collection entry and
// returns the place ID.
func MustInsertPlace(ctx context.Context, t *testing.T, tx store.DBTX, ownerID uuid.UUID, title string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	now := time.Now().UTC()
	_, err := tx.ExecContext(ctx,
		`INSERT INTO places (id, title, description, address, latitude, longitude, image_path, owner_id, created_at, updated_at)
		 VALUES ($1, $2, 'A test place description', '1 Test Street', 40.7484, -73.9857, '', $3, $4, $4)`,
		id, title, ownerID, now)
	require.NoError(t, err, "failed to insert test place")

	_, err = tx.ExecContext(ctx,
		`INSERT INTO user_places (place_id, user_id) VALUES ($1, $2)`,
		id, ownerID)
	require.NoError(t, err, "failed to insert test place link")

	return id
}
