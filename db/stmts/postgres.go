package stmts

import (
	"github.com/a-h/levelobjects/db"
)

type Postgres struct{}

func (pg Postgres) isStatementSet() db.StatementSet {
	return pg
}

func (Postgres) CreateTable(version string) db.Mutation {
	return db.Mutation{
		SQL: `CREATE TABLE IF NOT EXISTS ` + table(version) + ` (
    id serial PRIMARY KEY,
    object_type varchar(255) NOT NULL,
    position varchar(255) NOT NULL,
    rotation varchar(255) NOT NULL,
    scale varchar(255) NOT NULL,
    collider text NOT NULL
);`,
	}
}

func (Postgres) DeleteAll(version string) db.Mutation {
	return db.Mutation{
		SQL: `DELETE FROM ` + table(version) + `;`,
	}
}

func (Postgres) SelectAll(version string) db.Query {
	return db.Query{
		SQL: `SELECT id, object_type, position, rotation, scale, collider FROM ` + table(version) + ` ORDER BY id;`,
	}
}

func (Postgres) SelectByID(version string, id int64) db.Query {
	return db.Query{
		SQL: `SELECT id, object_type, position, rotation, scale, collider FROM ` + table(version) + ` WHERE id = @id;`,
		Args: map[string]any{
			"id": id,
		},
	}
}

func (Postgres) SelectMinID(version string) db.Query {
	return db.Query{
		SQL: `SELECT MIN(id) FROM ` + table(version) + `;`,
	}
}

func (Postgres) Count(version string) db.Query {
	return db.Query{
		SQL: `SELECT COUNT(*) FROM ` + table(version) + `;`,
	}
}

func (Postgres) Insert(version string, f db.Fields) db.Mutation {
	return db.Mutation{
		SQL: `INSERT INTO ` + table(version) + ` (object_type, position, rotation, scale, collider)
VALUES (@object_type, @position, @rotation, @scale, @collider);`,
		Args: map[string]any{
			"object_type": f.ObjectType,
			"position":    f.Position,
			"rotation":    f.Rotation,
			"scale":       f.Scale,
			"collider":    f.Collider,
		},
		MustAffectRows: true,
	}
}

func (Postgres) MigrationsTable() db.Mutation {
	return db.Mutation{
		SQL: `CREATE TABLE IF NOT EXISTS schema_migrations (
    name text PRIMARY KEY,
    applied timestamptz NOT NULL DEFAULT now()
);`,
	}
}

func (Postgres) MigrationApplied(name string) db.Query {
	return db.Query{
		SQL: `SELECT COUNT(*) FROM schema_migrations WHERE name = @name;`,
		Args: map[string]any{
			"name": name,
		},
	}
}

func (Postgres) RecordMigration(name string) db.Mutation {
	return db.Mutation{
		SQL: `INSERT INTO schema_migrations (name) VALUES (@name);`,
		Args: map[string]any{
			"name": name,
		},
		MustAffectRows: true,
	}
}
