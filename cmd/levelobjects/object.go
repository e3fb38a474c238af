package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

type ObjectCommand struct {
	Version string `arg:"" help:"The version to get the object from." required:""`
	ID      int64  `arg:"" help:"The id of the object to get." required:""`
}

func (c *ObjectCommand) Run(ctx context.Context, g GlobalFlags) error {
	store, err := g.Store(ctx)
	if err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}

	o, ok, err := store.Get(ctx, c.Version, c.ID)
	if err != nil {
		return fmt.Errorf("failed to get object: %w", err)
	}
	if !ok {
		return fmt.Errorf("object %d not found in version %s", c.ID, c.Version)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(o)
}
