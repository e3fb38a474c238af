package levelobjects

import (
	"context"
	"testing"

	"github.com/a-h/levelobjects/db"
)

func newFirstIDTest(ctx context.Context, store Store) func(t *testing.T) {
	return func(t *testing.T) {
		if _, _, err := store.Prepare(ctx, "first"); err != nil {
			t.Fatalf("unexpected error preparing: %v", err)
		}

		t.Run("Empty table yields ok=false, not a zero id", func(t *testing.T) {
			_, ok, err := store.FirstID(ctx, "first")
			if err != nil {
				t.Fatalf("unexpected error getting first id: %v", err)
			}
			if ok {
				t.Error("expected no first id on an empty table")
			}
		})
		t.Run("Returns the smallest id", func(t *testing.T) {
			for i := 0; i < 3; i++ {
				if _, err := store.Set(ctx, "first", db.Fields{ObjectType: "crate", Position: "0,0,0", Rotation: "0,0,0", Scale: "1,1,1", Collider: "box"}); err != nil {
					t.Fatalf("unexpected error inserting: %v", err)
				}
			}
			objects, err := store.List(ctx, "first")
			if err != nil {
				t.Fatalf("unexpected error listing: %v", err)
			}
			id, ok, err := store.FirstID(ctx, "first")
			if err != nil {
				t.Fatalf("unexpected error getting first id: %v", err)
			}
			if !ok {
				t.Fatal("expected a first id")
			}
			if id != objects[0].ID {
				t.Errorf("expected first id %d, got %d", objects[0].ID, id)
			}
		})
	}
}
