package main

import (
	"context"
	"fmt"
)

type FirstCommand struct {
	Version string `arg:"" help:"The version to get the first id for." required:""`
}

func (c *FirstCommand) Run(ctx context.Context, g GlobalFlags) error {
	store, err := g.Store(ctx)
	if err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}

	id, ok, err := store.FirstID(ctx, c.Version)
	if err != nil {
		return fmt.Errorf("failed to get first id: %w", err)
	}
	if !ok {
		return fmt.Errorf("no objects stored for version %s", c.Version)
	}

	fmt.Println(id)
	return nil
}
