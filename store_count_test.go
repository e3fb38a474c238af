package levelobjects

import (
	"context"
	"testing"

	"github.com/a-h/levelobjects/db"
)

func newCountTest(ctx context.Context, store Store) func(t *testing.T) {
	return func(t *testing.T) {
		if _, _, err := store.Prepare(ctx, "count"); err != nil {
			t.Fatalf("unexpected error preparing: %v", err)
		}

		t.Run("Can count objects", func(t *testing.T) {
			for i := 0; i < 3; i++ {
				if _, err := store.Set(ctx, "count", db.Fields{ObjectType: "lamp", Position: "0,0,0", Rotation: "0,0,0", Scale: "1,1,1", Collider: "none"}); err != nil {
					t.Fatalf("unexpected error inserting: %v", err)
				}
			}
			count, err := store.Count(ctx, "count")
			if err != nil {
				t.Errorf("unexpected error counting: %v", err)
			}
			if count != 3 {
				t.Errorf("expected 3 objects, got %d", count)
			}
		})
	}
}
