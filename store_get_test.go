package levelobjects

import (
	"context"
	"testing"

	"github.com/a-h/levelobjects/db"
)

func newGetTest(ctx context.Context, store Store) func(t *testing.T) {
	return func(t *testing.T) {
		if _, _, err := store.Prepare(ctx, "get"); err != nil {
			t.Fatalf("unexpected error preparing: %v", err)
		}
		expected := db.Fields{
			ObjectType: "spawn_point",
			Position:   "10,0,-3",
			Rotation:   "0,180,0",
			Scale:      "1,1,1",
			Collider:   "capsule:0.5,2",
		}
		if _, err := store.Set(ctx, "get", expected); err != nil {
			t.Fatalf("unexpected error inserting: %v", err)
		}

		t.Run("Can get an object by id", func(t *testing.T) {
			id, ok, err := store.FirstID(ctx, "get")
			if err != nil || !ok {
				t.Fatalf("unexpected error getting first id: ok=%v err=%v", ok, err)
			}
			o, ok, err := store.Get(ctx, "get", id)
			if err != nil {
				t.Fatalf("unexpected error getting object: %v", err)
			}
			if !ok {
				t.Fatal("expected object to be found")
			}
			if o.ID != id {
				t.Errorf("expected id %d, got %d", id, o.ID)
			}
			actual := db.Fields{ObjectType: o.ObjectType, Position: o.Position, Rotation: o.Rotation, Scale: o.Scale, Collider: o.Collider}
			if actual != expected {
				t.Errorf("expected %#v, got %#v", expected, actual)
			}
		})
		t.Run("Returns ok=false if the id does not exist", func(t *testing.T) {
			_, ok, err := store.Get(ctx, "get", 999999)
			if err != nil {
				t.Fatalf("unexpected error getting object: %v", err)
			}
			if ok {
				t.Error("expected object not to be found")
			}
		})
	}
}
