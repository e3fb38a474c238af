package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

type ObjectsCommand struct {
	Version string `arg:"" help:"The version to list objects for." required:""`
}

func (c *ObjectsCommand) Run(ctx context.Context, g GlobalFlags) error {
	store, err := g.Store(ctx)
	if err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}

	objects, err := store.List(ctx, c.Version)
	if err != nil {
		return fmt.Errorf("failed to list objects: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(objects)
}
