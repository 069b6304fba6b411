package postgres_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/placeshare/places-api/internal/domain"
	"github.com/placeshare/places-api/internal/platform/postgres"
	"github.com/placeshare/places-api/internal/store"
	"github.com/placeshare/places-api/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoredPlace(t *testing.T, ownerID uuid.UUID, title string) *domain.Place {
	t.Helper()

	place, err := domain.NewPlace(
		ownerID, title, "A test place description", "1 Test Street", 40.7484, -73.9857, "")
	require.NoError(t, err)
	return place
}

func TestPostgresPlaceStore_CreateAndGet(t *testing.T) {
	t.Parallel()
	if !testutils.IsIntegrationTestEnvironment() {
		t.Skip("Skipping integration test - requires DATABASE_URL environment variable")
	}

	db, err := testutils.GetTestDB()
	require.NoError(t, err)
	defer testutils.AssertCloseNoError(t, db)

	testutils.WithTx(t, db, func(tx store.DBTX) {
		ctx := context.Background()
		placeStore := postgres.NewPostgresPlaceStore(tx, slog.Default())

		ownerID := testutils.MustInsertUser(ctx, t, tx, "place-create@example.com")

		place := newStoredPlace(t, ownerID, "Created Place")
		require.NoError(t, placeStore.Create(ctx, place))

		got, err := placeStore.GetByID(ctx, place.ID)
		require.NoError(t, err)
		assert.Equal(t, place.Title, got.Title)
		assert.Equal(t, place.Latitude, got.Latitude)
		assert.Equal(t, place.Longitude, got.Longitude)
		assert.Equal(t, ownerID, got.OwnerID)

		t.Run("unknown owner is rejected", func(t *testing.T) {
			orphan := newStoredPlace(t, uuid.New(), "Orphan Place")
			err := placeStore.Create(ctx, orphan)
			assert.ErrorIs(t, err, store.ErrInvalidEntity)
		})

		t.Run("missing place maps to ErrPlaceNotFound", func(t *testing.T) {
			_, err := placeStore.GetByID(ctx, uuid.New())
			assert.ErrorIs(t, err, store.ErrPlaceNotFound)
		})
	})
}

func TestPostgresPlaceStore_ListByOwner(t *testing.T) {
	t.Parallel()
	if !testutils.IsIntegrationTestEnvironment() {
		t.Skip("Skipping integration test - requires DATABASE_URL environment variable")
	}

	db, err := testutils.GetTestDB()
	require.NoError(t, err)
	defer testutils.AssertCloseNoError(t, db)

	testutils.WithTx(t, db, func(tx store.DBTX) {
		ctx := context.Background()
		placeStore := postgres.NewPostgresPlaceStore(tx, slog.Default())

		ownerID := testutils.MustInsertUser(ctx, t, tx, "place-list@example.com")
		testutils.MustInsertPlace(ctx, t, tx, ownerID, "Place One")
		testutils.MustInsertPlace(ctx, t, tx, ownerID, "Place Two")

		places, err := placeStore.ListByOwner(ctx, ownerID)
		require.NoError(t, err)
		assert.Len(t, places, 2)

		t.Run("owner with no places yields an empty slice", func(t *testing.T) {
			otherOwner := testutils.MustInsertUser(ctx, t, tx, "no-places@example.com")
			places, err := placeStore.ListByOwner(ctx, otherOwner)
			require.NoError(t, err)
			assert.NotNil(t, places)
			assert.Empty(t, places)
		})
	})
}

func TestPostgresPlaceStore_Update(t *testing.T) {
	t.Parallel()
	if !testutils.IsIntegrationTestEnvironment() {
		t.Skip("Skipping integration test - requires DATABASE_URL environment variable")
	}

	db, err := testutils.GetTestDB()
	require.NoError(t, err)
	defer testutils.AssertCloseNoError(t, db)

	testutils.WithTx(t, db, func(tx store.DBTX) {
		ctx := context.Background()
		placeStore := postgres.NewPostgresPlaceStore(tx, slog.Default())

		ownerID := testutils.MustInsertUser(ctx, t, tx, "place-update@example.com")
		place := newStoredPlace(t, ownerID, "Before Update")
		require.NoError(t, placeStore.Create(ctx, place))

		require.NoError(t, place.UpdateFields("After Update", "An updated description"))
		require.NoError(t, placeStore.Update(ctx, place))

		got, err := placeStore.GetByID(ctx, place.ID)
		require.NoError(t, err)
		assert.Equal(t, "After Update", got.Title)
		assert.Equal(t, "An updated description", got.Description)

		t.Run("updating a missing place maps to ErrPlaceNotFound", func(t *testing.T) {
			ghost := newStoredPlace(t, ownerID, "Ghost Place")
			err := placeStore.Update(ctx, ghost)
			assert.ErrorIs(t, err, store.ErrPlaceNotFound)
		})
	})
}

func TestPostgresPlaceStore_Delete(t *testing.T) {
	t.Parallel()
	if !testutils.IsIntegrationTestEnvironment() {
		t.Skip("Skipping integration test - requires DATABASE_URL environment variable")
	}

	db, err := testutils.GetTestDB()
	require.NoError(t, err)
	defer testutils.AssertCloseNoError(t, db)

	testutils.WithTx(t, db, func(tx store.DBTX) {
		ctx := context.Background()
		placeStore := postgres.NewPostgresPlaceStore(tx, slog.Default())

		ownerID := testutils.MustInsertUser(ctx, t, tx, "place-delete@example.com")
		place := newStoredPlace(t, ownerID, "Doomed Place")
		require.NoError(t, placeStore.Create(ctx, place))

		require.NoError(t, placeStore.Delete(ctx, place.ID))

		_, err := placeStore.GetByID(ctx, place.ID)
		assert.ErrorIs(t, err, store.ErrPlaceNotFound)

		t.Run("deleting a missing place maps to ErrPlaceNotFound", func(t *testing.T) {
			err := placeStore.Delete(ctx, uuid.New())
			assert.ErrorIs(t, err, store.ErrPlaceNotFound)
		})
	})
}
