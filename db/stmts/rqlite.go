package stmts

import (
	"github.com/a-h/levelobjects/db"
)

// Rqlite uses the sqlite dialect, but rqlite's HTTP API keys named
// parameters without the leading colon.
type Rqlite struct{}

func (rq Rqlite) isStatementSet() db.StatementSet {
	return rq
}

func (Rqlite) CreateTable(version string) db.Mutation {
	return db.Mutation{
		SQL: `create table if not exists ` + table(version) + ` (
  id integer primary key autoincrement,
  object_type text not null,
  position text not null,
  rotation text not null,
  scale text not null,
  collider text not null
);`,
	}
}

func (Rqlite) DeleteAll(version string) db.Mutation {
	return db.Mutation{
		SQL: `delete from ` + table(version) + `;`,
	}
}

func (Rqlite) SelectAll(version string) db.Query {
	return db.Query{
		SQL: `select id, object_type, position, rotation, scale, collider from ` + table(version) + ` order by id;`,
	}
}

func (Rqlite) SelectByID(version string, id int64) db.Query {
	return db.Query{
		SQL: `select id, object_type, position, rotation, scale, collider from ` + table(version) + ` where id = :id;`,
		Args: map[string]any{
			"id": id,
		},
	}
}

func (Rqlite) SelectMinID(version string) db.Query {
	return db.Query{
		SQL: `select min(id) from ` + table(version) + `;`,
	}
}

func (Rqlite) Count(version string) db.Query {
	return db.Query{
		SQL: `select count(*) from ` + table(version) + `;`,
	}
}

func (Rqlite) Insert(version string, f db.Fields) db.Mutation {
	return db.Mutation{
		SQL: `insert into ` + table(version) + ` (object_type, position, rotation, scale, collider)
values (:object_type, :position, :rotation, :scale, :collider);`,
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

func (Rqlite) MigrationsTable() db.Mutation {
	return db.Mutation{
		SQL: `create table if not exists schema_migrations (name text primary key, applied text not null) without rowid;`,
	}
}

func (Rqlite) MigrationApplied(name string) db.Query {
	return db.Query{
		SQL: `select count(*) from schema_migrations where name = :name;`,
		Args: map[string]any{
			"name": name,
		},
	}
}

func (Rqlite) RecordMigration(name string) db.Mutation {
	return db.Mutation{
		SQL: `insert into schema_migrations (name, applied) values (:name, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'));`,
		Args: map[string]any{
			"name": name,
		},
		MustAffectRows: true,
	}
}
