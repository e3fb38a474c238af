package levelobjects

import (
	"context"
	"errors"
	"fmt"

	"github.com/a-h/levelobjects/db"
	"github.com/a-h/levelobjects/db/stmts"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

func NewSqlite(pool *sqlitex.Pool) *Sqlite {
	return &Sqlite{
		pool: pool,
	}
}

type Sqlite struct {
	pool *sqlitex.Pool
}

func (s *Sqlite) isDB() db.DB { return s }

func newObjectFromStmt(stmt *sqlite.Stmt) db.Object {
	return db.Object{
		ID:         stmt.GetInt64("id"),
		ObjectType: stmt.GetText("object_type"),
		Position:   stmt.GetText("position"),
		Rotation:   stmt.GetText("rotation"),
		Scale:      stmt.GetText("scale"),
		Collider:   stmt.GetText("collider"),
	}
}

func (s *Sqlite) Query(ctx context.Context, queries ...db.Query) (outputs [][]db.Object, err error) {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return nil, err
	}
	defer s.pool.Put(conn)

	outputs = make([][]db.Object, len(queries))
	for i, q := range queries {
		opts := &sqlitex.ExecOptions{
			Named: q.Args,
			ResultFunc: func(stmt *sqlite.Stmt) error {
				outputs[i] = append(outputs[i], newObjectFromStmt(stmt))
				return nil
			},
		}
		if err = sqlitex.Execute(conn, q.SQL, opts); err != nil {
			return outputs, fmt.Errorf("query: error in query index %d: %w", i, err)
		}
	}

	return outputs, nil
}

func (s *Sqlite) Mutate(ctx context.Context, mutations ...db.Mutation) (rowsAffected []int64, err error) {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return nil, err
	}
	defer s.pool.Put(conn)

	rowsAffected = make([]int64, len(mutations))
	errs := make([]error, len(mutations))
	for i, m := range mutations {
		opts := &sqlitex.ExecOptions{
			Named: m.Args,
		}
		if err = sqlitex.Execute(conn, m.SQL, opts); err != nil {
			errs[i] = fmt.Errorf("mutate: error in mutation index %d: %w", i, err)
			continue
		}
		rowsAffected[i] = int64(conn.Changes())
		if m.MustAffectRows && rowsAffected[i] == 0 {
			errs[i] = fmt.Errorf("mutate: mutation index %d affected no rows", i)
		}
	}

	return rowsAffected, errors.Join(errs...)
}

func (s *Sqlite) QueryScalarInt64(ctx context.Context, q db.Query) (n int64, ok bool, err error) {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return 0, false, err
	}
	defer s.pool.Put(conn)

	opts := &sqlitex.ExecOptions{
		Named: q.Args,
		ResultFunc: func(stmt *sqlite.Stmt) error {
			if stmt.ColumnType(0) == sqlite.TypeNull {
				return nil
			}
			if stmt.ColumnType(0) != sqlite.TypeInteger {
				return fmt.Errorf("expected integer, got %s", stmt.ColumnType(0).String())
			}
			n = stmt.ColumnInt64(0)
			ok = true
			return nil
		},
	}
	if err := sqlitex.Execute(conn, q.SQL, opts); err != nil {
		return 0, false, err
	}
	return n, ok, nil
}

func (s *Sqlite) Statements() db.StatementSet {
	return stmts.SQLite{}
}
