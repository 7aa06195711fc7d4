package snapshotstore_test

import (
	"errors"
	"testing"
	"time"

	snapshotstore "github.com/dalemusser/seopulse/internal/app/store/snapshots"
	"github.com/dalemusser/seopulse/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestLatest_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := snapshotstore.New(db)
	_, err := store.Latest(ctx)
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Fatalf("Latest on empty collection: got %v, want mongo.ErrNoDocuments", err)
	}
}

func TestLatest_ReturnsNewest(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures := testutil.NewFixtures(t, db)
	now := time.Now()
	fixtures.CreateSnapshot(ctx, testutil.SampleDashboard("Older"), now.Add(-time.Hour))
	newest := fixtures.CreateSnapshot(ctx, testutil.SampleDashboard("Newer"), now)
	fixtures.CreateSnapshot(ctx, testutil.SampleDashboard("Oldest"), now.Add(-48*time.Hour))

	store := snapshotstore.New(db)
	if err := store.EnsureIndexes(ctx); err != nil {
		t.Fatalf("EnsureIndexes failed: %v", err)
	}

	got, err := store.Latest(ctx)
	if err != nil {
		t.Fatalf("Latest failed: %v", err)
	}
	if got.ID != newest.ID {
		t.Errorf("Latest returned %q, want %q", got.Title, "Newer")
	}
	if len(got.Monthly) != 2 || got.Monthly[1].Name != "Feb" {
		t.Errorf("monthly rows not round-tripped: %+v", got.Monthly)
	}
	if got.Color("teal", "") != "#00A0AC" {
		t.Errorf("palette not round-tripped: %+v", got.Palette)
	}
}

func TestInsert_SetsIDAndCreatedAt(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := snapshotstore.New(db)
	d, err := store.Insert(ctx, testutil.SampleDashboard("Inserted"))
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if d.ID.IsZero() {
		t.Error("Insert did not assign an ID")
	}
	if d.CreatedAt.IsZero() {
		t.Error("Insert did not set CreatedAt")
	}

	n, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}
}
