package main

import (
	"context"
	"fmt"
	"os"

	"github.com/a-h/levelobjects/migrate"
)

type MigrateCommand struct {
	Dir string `help:"The directory containing .sql migration files." default:"migrations"`
}

func (c *MigrateCommand) Run(ctx context.Context, g GlobalFlags) error {
	database, err := g.DB(ctx)
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}

	applied, err := migrate.Apply(ctx, database, os.DirFS(c.Dir))
	if err != nil {
		return err
	}

	if len(applied) == 0 {
		fmt.Println("no pending migrations")
		return nil
	}
	for _, name := range applied {
		fmt.Println(name)
	}
	return nil
}
