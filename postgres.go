package levelobjects

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/a-h/levelobjects/db"
	"github.com/a-h/levelobjects/db/stmts"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DefaultPostgresAcquireTimeout bounds how long a request waits for a pooled
// connection before failing with a resource-exhaustion error.
const DefaultPostgresAcquireTimeout = 3 * time.Second

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{
		pool:           pool,
		acquireTimeout: DefaultPostgresAcquireTimeout,
	}
}

type Postgres struct {
	pool           *pgxpool.Pool
	acquireTimeout time.Duration
}

func (p *Postgres) isDB() db.DB { return p }

func (p *Postgres) acquire(ctx context.Context) (*pgxpool.Conn, error) {
	ctx, cancel := context.WithTimeout(ctx, p.acquireTimeout)
	defer cancel()
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	return conn, nil
}

func (p *Postgres) Query(ctx context.Context, queries ...db.Query) (outputs [][]db.Object, err error) {
	conn, err := p.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	outputs = make([][]db.Object, len(queries))
	for i, q := range queries {
		args := []any{}
		if len(q.Args) > 0 {
			args = append(args, pgx.NamedArgs(q.Args))
		}
		rows, err := conn.Query(ctx, q.SQL, args...)
		if err != nil {
			return outputs, fmt.Errorf("query: error in query index %d: %w", i, err)
		}
		for rows.Next() {
			var o db.Object
			if err = rows.Scan(&o.ID, &o.ObjectType, &o.Position, &o.Rotation, &o.Scale, &o.Collider); err != nil {
				rows.Close()
				return outputs, fmt.Errorf("query: error scanning row: %w", err)
			}
			outputs[i] = append(outputs[i], o)
		}
		err = rows.Err()
		rows.Close()
		if err != nil {
			return outputs, fmt.Errorf("query: error in query index %d: %w", i, err)
		}
	}
	return outputs, nil
}

func (p *Postgres) Mutate(ctx context.Context, mutations ...db.Mutation) (rowsAffected []int64, err error) {
	conn, err := p.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rowsAffected = make([]int64, len(mutations))
	errs := make([]error, len(mutations))
	for i, m := range mutations {
		args := []any{}
		if len(m.Args) > 0 {
			args = append(args, pgx.NamedArgs(m.Args))
		}
		res, err := conn.Exec(ctx, m.SQL, args...)
		if err != nil {
			errs[i] = fmt.Errorf("mutate: error in mutation index %d: %w", i, err)
			continue
		}
		rowsAffected[i] = res.RowsAffected()
		if m.MustAffectRows && rowsAffected[i] == 0 {
			errs[i] = fmt.Errorf("mutate: mutation index %d affected no rows", i)
		}
	}

	return rowsAffected, errors.Join(errs...)
}

func (p *Postgres) QueryScalarInt64(ctx context.Context, q db.Query) (n int64, ok bool, err error) {
	conn, err := p.acquire(ctx)
	if err != nil {
		return 0, false, err
	}
	defer conn.Release()

	args := []any{}
	if len(q.Args) > 0 {
		args = append(args, pgx.NamedArgs(q.Args))
	}
	var v *int64
	if err = conn.QueryRow(ctx, q.SQL, args...).Scan(&v); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("query: error scanning row: %w", err)
	}
	if v == nil {
		return 0, false, nil
	}
	return *v, true, nil
}

func (p *Postgres) Statements() db.StatementSet {
	return stmts.Postgres{}
}
