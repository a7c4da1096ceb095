package out

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"planwise/internal/modules/session/domain"
	"planwise/internal/platform/tx"
)

func openStore(t *testing.T) (*SQLiteStateStore, *tx.SQLManager) {
	t.Helper()
	db, err := OpenDB(filepath.Join(t.TempDir(), "nested", "planwise.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	store, err := NewSQLiteStateStore(db)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store.(*SQLiteStateStore), tx.NewSQLManager(db)
}

func TestStateRoundTrip(t *testing.T) {
	t.Parallel()
	store, _ := openStore(t)
	ctx := context.Background()

	empty, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if empty != (domain.State{}) {
		t.Fatalf("expected empty state, got %+v", empty)
	}

	if err := store.Save(ctx, domain.State{StudentID: 12, PlanID: 3}); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Load(ctx)
	if err != nil || got != (domain.State{StudentID: 12, PlanID: 3}) {
		t.Fatalf("unexpected state: %+v %v", got, err)
	}
}

func TestKeysAreIndependent(t *testing.T) {
	t.Parallel()
	store, _ := openStore(t)
	ctx := context.Background()

	if err := store.put(ctx, keyStudentID, "12"); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, err := store.Load(ctx)
	if err != nil || got != (domain.State{StudentID: 12}) {
		t.Fatalf("missing plan should read as zero: %+v %v", got, err)
	}

	if err := store.put(ctx, keyPlanID, "not-a-number"); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, err = store.Load(ctx)
	if err != nil || got != (domain.State{StudentID: 12}) {
		t.Fatalf("unparseable plan should read as zero: %+v %v", got, err)
	}
}

func TestProfileRoundTripAndDamage(t *testing.T) {
	t.Parallel()
	store, _ := openStore(t)
	ctx := context.Background()

	if _, ok, err := store.LoadProfile(ctx); err != nil || ok {
		t.Fatalf("expected no profile, ok=%v err=%v", ok, err)
	}
	at := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	profile := domain.Profile{Student: domain.Student{ID: 12, LoginID: "abc123", FirstName: "New"}, PlanID: 3, SignedInAt: at}
	if err := store.SaveProfile(ctx, profile); err != nil {
		t.Fatalf("save profile: %v", err)
	}
	got, ok, err := store.LoadProfile(ctx)
	if err != nil || !ok || got.Student.LoginID != "abc123" || !got.SignedInAt.Equal(at) {
		t.Fatalf("unexpected profile: %+v ok=%v err=%v", got, ok, err)
	}

	if err := store.put(ctx, keyProfile, "{broken"); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, ok, err := store.LoadProfile(ctx); err != nil || ok {
		t.Fatalf("damaged profile should read as missing, ok=%v err=%v", ok, err)
	}
}

func TestWithinRollsBack(t *testing.T) {
	t.Parallel()
	store, txm := openStore(t)
	ctx := context.Background()

	err := txm.Within(ctx, func(ctx context.Context) error {
		if err := store.Save(ctx, domain.State{StudentID: 5, PlanID: 6}); err != nil {
			return err
		}
		return fmt.Errorf("boom")
	})
	if err == nil {
		t.Fatalf("expected error")
	}
	got, err := store.Load(ctx)
	if err != nil || got != (domain.State{}) {
		t.Fatalf("expected rollback, got %+v %v", got, err)
	}
}
