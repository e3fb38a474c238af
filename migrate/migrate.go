// Package migrate applies .sql migration files in lexical order, recording
// each applied file name in a schema_migrations table so that reruns are
// no-ops. It is invoked as a one-shot step before the service runs; the
// service itself never migrates.
package migrate

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/a-h/levelobjects/db"
)

// Apply runs all pending .sql files in fsys against the database and returns
// the names of the files it applied. Files already recorded in
// schema_migrations are skipped.
//
// Statements within a file are split on semicolons; string literals
// containing a semicolon are not supported.
func Apply(ctx context.Context, database db.DB, fsys fs.FS) (applied []string, err error) {
	set := database.Statements()
	if _, err = database.Mutate(ctx, set.MigrationsTable()); err != nil {
		return nil, fmt.Errorf("migrate: creating schema_migrations: %w", err)
	}

	names, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return nil, fmt.Errorf("migrate: listing migrations: %w", err)
	}
	sort.Strings(names)

	for _, name := range names {
		n, _, err := database.QueryScalarInt64(ctx, set.MigrationApplied(name))
		if err != nil {
			return applied, fmt.Errorf("migrate: checking %s: %w", name, err)
		}
		if n > 0 {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return applied, fmt.Errorf("migrate: reading %s: %w", name, err)
		}

		mutations := split(string(content))
		mutations = append(mutations, set.RecordMigration(name))
		if _, err = database.Mutate(ctx, mutations...); err != nil {
			return applied, fmt.Errorf("migrate: applying %s: %w", name, err)
		}
		applied = append(applied, name)
	}

	return applied, nil
}

func split(content string) (mutations []db.Mutation) {
	for _, statement := range strings.Split(content, ";") {
		statement = strings.TrimSpace(statement)
		if statement == "" {
			continue
		}
		mutations = append(mutations, db.Mutation{SQL: statement + ";"})
	}
	return mutations
}
