package main

import (
	"context"
	"fmt"
)

type PrepareCommand struct {
	Version string `arg:"" help:"The version to prepare." required:""`
}

func (c *PrepareCommand) Run(ctx context.Context, g GlobalFlags) error {
	store, err := g.Store(ctx)
	if err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}

	count, clean, err := store.Prepare(ctx, c.Version)
	if err != nil {
		return fmt.Errorf("failed to prepare version: %w", err)
	}
	if !clean {
		return fmt.Errorf("expected an empty table after prepare, got %d rows", count)
	}

	fmt.Printf("prepared version %s\n", c.Version)
	return nil
}
