package main

import (
	"context"
	"fmt"
	"net/url"
	"os"

	"github.com/a-h/levelobjects"
	"github.com/a-h/levelobjects/db"
	"github.com/alecthomas/kong"
	"github.com/jackc/pgx/v5/pgxpool"
	rqlitehttp "github.com/rqlite/rqlite-go-http"
	"zombiezen.com/go/sqlite/sqlitex"
)

type GlobalFlags struct {
	Type       string `help:"The type of database to use." enum:"sqlite,postgres,rqlite" default:"sqlite"`
	Connection string `help:"The connection string to use." env:"DATABASE_URL" default:"file:levelobjects.db?mode=rwc"`
}

func (g GlobalFlags) Store(ctx context.Context) (levelobjects.Store, error) {
	database, err := g.DB(ctx)
	if err != nil {
		return levelobjects.Store{}, err
	}
	return levelobjects.NewStore(database), nil
}

func (g GlobalFlags) DB(ctx context.Context) (db.DB, error) {
	switch g.Type {
	case "sqlite":
		pool, err := sqlitex.NewPool(g.Connection, sqlitex.PoolOptions{})
		if err != nil {
			return nil, err
		}
		return levelobjects.NewSqlite(pool), nil
	case "postgres":
		cfg, err := pgxpool.ParseConfig(g.Connection)
		if err != nil {
			return nil, err
		}
		cfg.MaxConns = 5
		pool, err := pgxpool.NewWithConfig(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return levelobjects.NewPostgres(pool), nil
	case "rqlite":
		u, err := url.Parse(g.Connection)
		if err != nil {
			return nil, err
		}
		user := u.Query().Get("user")
		password := u.Query().Get("password")
		// Remove user and password from the connection string.
		u.RawQuery = ""
		client := rqlitehttp.NewClient(u.String(), nil)
		if user != "" && password != "" {
			client.SetBasicAuth(user, password)
		}
		return levelobjects.NewRqlite(client), nil
	default:
		return nil, fmt.Errorf("unknown database type %q", g.Type)
	}
}

type CLI struct {
	GlobalFlags

	Serve   ServeCommand   `cmd:"serve" help:"Run the HTTP server."`
	Migrate MigrateCommand `cmd:"migrate" help:"Apply pending schema migrations."`
	Prepare PrepareCommand `cmd:"prepare" help:"Create a version's table and clear it."`
	Objects ObjectsCommand `cmd:"objects" help:"List all objects for a version."`
	Object  ObjectCommand  `cmd:"object" help:"Get an object by id."`
	First   FirstCommand   `cmd:"first" help:"Get the smallest object id for a version."`
	Set     SetCommand     `cmd:"set" help:"Insert an object."`
	Count   CountCommand   `cmd:"count" help:"Count the objects for a version."`
}

func main() {
	var cli CLI
	ctx := context.Background()
	kctx := kong.Parse(&cli,
		kong.UsageOnError(),
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.BindTo(cli.GlobalFlags, (*GlobalFlags)(nil)),
	)
	if err := kctx.Run(ctx, cli.GlobalFlags); err != nil {
		fmt.Println(err)

		os.Exit(1)
	}
}
