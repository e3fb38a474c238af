package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/a-h/levelobjects"
	"github.com/a-h/levelobjects/api"
	"github.com/a-h/levelobjects/db"
)

type ServeCommand struct {
	Addr string `help:"The address to listen on." default:"localhost:3000"`
}

func (c *ServeCommand) Run(ctx context.Context, g GlobalFlags) error {
	log := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	database, err := g.DB(ctx)
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}

	// Fail at startup if the database is unreachable.
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, _, err := database.QueryScalarInt64(pingCtx, db.Query{SQL: `select 1;`}); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	store := levelobjects.NewStore(database)

	server := &http.Server{
		Addr:              c.Addr,
		Handler:           api.NewRouter(log, store),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	errs := make(chan error, 1)
	go func() {
		log.Info("listening", slog.String("addr", c.Addr))
		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down cleanly: %w", err)
	}
	return nil
}
