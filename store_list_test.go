package levelobjects

import (
	"context"
	"testing"

	"github.com/a-h/levelobjects/db"
)

func newListTest(ctx context.Context, store Store) func(t *testing.T) {
	return func(t *testing.T) {
		if _, _, err := store.Prepare(ctx, "list"); err != nil {
			t.Fatalf("unexpected error preparing: %v", err)
		}

		t.Run("Empty table yields an empty list", func(t *testing.T) {
			objects, err := store.List(ctx, "list")
			if err != nil {
				t.Fatalf("unexpected error listing: %v", err)
			}
			if len(objects) != 0 {
				t.Errorf("expected no objects, got %d", len(objects))
			}
		})
		t.Run("Inserted objects are listed in id order", func(t *testing.T) {
			fields := []db.Fields{
				{ObjectType: "tree", Position: "1,0,1", Rotation: "0,0,0", Scale: "1,1,1", Collider: "box:1,1,1"},
				{ObjectType: "rock", Position: "2,0,2", Rotation: "0,90,0", Scale: "2,2,2", Collider: "sphere:0.5"},
			}
			for _, f := range fields {
				if _, err := store.Set(ctx, "list", f); err != nil {
					t.Fatalf("unexpected error inserting: %v", err)
				}
			}
			objects, err := store.List(ctx, "list")
			if err != nil {
				t.Fatalf("unexpected error listing: %v", err)
			}
			if len(objects) != len(fields) {
				t.Fatalf("expected %d objects, got %d", len(fields), len(objects))
			}
			for i, o := range objects {
				if i > 0 && objects[i-1].ID >= o.ID {
					t.Errorf("expected ids in ascending order, got %d before %d", objects[i-1].ID, o.ID)
				}
				if o.ObjectType != fields[i].ObjectType || o.Position != fields[i].Position {
					t.Errorf("object %d: expected %#v, got %#v", i, fields[i], o)
				}
			}
		})
	}
}
