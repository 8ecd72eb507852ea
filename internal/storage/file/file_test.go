package file

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/haushalt/ledger/internal/ledger"
)

func TestLoadAbsentOnFirstRun(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "ledger.json"))
	_, found, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if found {
		t.Fatal("expected no snapshot on first run")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "ledger.json"))

	personID := uuid.New()
	snap := ledger.Snapshot{
		Timestamp: time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC),
		Persons:   []ledger.Person{{ID: personID, Name: "Anna"}},
	}
	if err := s.Save(context.Background(), snap); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, found, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !found {
		t.Fatal("expected snapshot after save")
	}
	if len(got.Persons) != 1 || got.Persons[0].ID != personID || got.Persons[0].Name != "Anna" {
		t.Fatalf("unexpected snapshot: %+v", got.Persons)
	}
	if !got.Timestamp.Equal(snap.Timestamp) {
		t.Fatalf("timestamp: got %s want %s", got.Timestamp, snap.Timestamp)
	}
}

func TestSaveOverwrites(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "ledger.json"))
	ctx := context.Background()

	first := ledger.Snapshot{Persons: []ledger.Person{{ID: uuid.New(), Name: "Anna"}}}
	if err := s.Save(ctx, first); err != nil {
		t.Fatal(err)
	}
	second := ledger.Snapshot{Persons: []ledger.Person{{ID: uuid.New(), Name: "Ben"}, {ID: uuid.New(), Name: "Clara"}}}
	if err := s.Save(ctx, second); err != nil {
		t.Fatal(err)
	}

	got, _, err := s.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Persons) != 2 {
		t.Fatalf("want 2 persons after overwrite, got %d", len(got.Persons))
	}
}
