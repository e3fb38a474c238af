package main

import (
	"context"
	"fmt"

	"github.com/a-h/levelobjects/db"
)

type SetCommand struct {
	Version    string `arg:"" help:"The version to insert into." required:""`
	ObjectType string `help:"The object type." required:""`
	Position   string `help:"The position, e.g. \"0,0,0\"." required:""`
	Rotation   string `help:"The rotation." required:""`
	Scale      string `help:"The scale." required:""`
	Collider   string `help:"The collider parameters." required:""`
}

func (c *SetCommand) Run(ctx context.Context, g GlobalFlags) error {
	store, err := g.Store(ctx)
	if err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}

	count, err := store.Set(ctx, c.Version, db.Fields{
		ObjectType: c.ObjectType,
		Position:   c.Position,
		Rotation:   c.Rotation,
		Scale:      c.Scale,
		Collider:   c.Collider,
	})
	if err != nil {
		return fmt.Errorf("failed to set object: %w", err)
	}

	fmt.Println(count)
	return nil
}
