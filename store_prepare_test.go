package levelobjects

import (
	"context"
	"testing"

	"github.com/a-h/levelobjects/db"
)

func newPrepareTest(ctx context.Context, store Store) func(t *testing.T) {
	return func(t *testing.T) {
		t.Run("Creates an empty table", func(t *testing.T) {
			count, clean, err := store.Prepare(ctx, "prepare")
			if err != nil {
				t.Fatalf("unexpected error preparing: %v", err)
			}
			if count != 0 {
				t.Errorf("expected 0 rows after prepare, got %d", count)
			}
			if !clean {
				t.Error("expected prepare to report a clean table")
			}
		})
		t.Run("Is idempotent", func(t *testing.T) {
			for i := 0; i < 2; i++ {
				count, clean, err := store.Prepare(ctx, "prepare_twice")
				if err != nil {
					t.Fatalf("unexpected error preparing (run %d): %v", i, err)
				}
				if count != 0 || !clean {
					t.Errorf("run %d: expected an empty table, got count=%d clean=%v", i, count, clean)
				}
			}
		})
		t.Run("Clears existing rows", func(t *testing.T) {
			if _, _, err := store.Prepare(ctx, "prepare_clear"); err != nil {
				t.Fatalf("unexpected error preparing: %v", err)
			}
			if _, err := store.Set(ctx, "prepare_clear", db.Fields{ObjectType: "tree", Position: "0,0,0", Rotation: "0,0,0", Scale: "1,1,1", Collider: "box"}); err != nil {
				t.Fatalf("unexpected error inserting: %v", err)
			}
			count, clean, err := store.Prepare(ctx, "prepare_clear")
			if err != nil {
				t.Fatalf("unexpected error preparing again: %v", err)
			}
			if count != 0 || !clean {
				t.Errorf("expected an empty table after prepare, got count=%d clean=%v", count, clean)
			}
		})
	}
}
