package levelobjects

import (
	"context"
	"errors"
	"testing"

	"github.com/a-h/levelobjects/db"
)

func newVersionsTest(ctx context.Context, store Store) func(t *testing.T) {
	return func(t *testing.T) {
		t.Run("Versions are isolated from each other", func(t *testing.T) {
			for _, version := range []string{"iso_a", "iso_b"} {
				if _, _, err := store.Prepare(ctx, version); err != nil {
					t.Fatalf("unexpected error preparing %s: %v", version, err)
				}
			}
			if _, err := store.Set(ctx, "iso_a", db.Fields{ObjectType: "door", Position: "0,0,0", Rotation: "0,0,0", Scale: "1,1,1", Collider: "box"}); err != nil {
				t.Fatalf("unexpected error inserting: %v", err)
			}
			count, err := store.Count(ctx, "iso_b")
			if err != nil {
				t.Fatalf("unexpected error counting: %v", err)
			}
			if count != 0 {
				t.Errorf("expected version iso_b to be empty, got %d objects", count)
			}
		})
		t.Run("Unsafe tokens are rejected", func(t *testing.T) {
			_, _, err := store.Prepare(ctx, "1; drop table objects_v1")
			var invalid ErrInvalidVersion
			if !errors.As(err, &invalid) {
				t.Errorf("expected ErrInvalidVersion, got %v", err)
			}
		})
	}
}
