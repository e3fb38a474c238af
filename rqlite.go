package levelobjects

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/a-h/levelobjects/db"
	"github.com/a-h/levelobjects/db/stmts"
	rqlitehttp "github.com/rqlite/rqlite-go-http"
)

var objectColumns = []string{"id", "object_type", "position", "rotation", "scale", "collider"}

func checkResultColumns(result rqlitehttp.QueryResult) (err error) {
	if len(result.Columns) != len(objectColumns) {
		return fmt.Errorf("object: expected %d columns, got %d", len(objectColumns), len(result.Columns))
	}
	for i, c := range objectColumns {
		if result.Columns[i] != c {
			return fmt.Errorf("object: expected columns %v, got %v", objectColumns, result.Columns)
		}
	}
	return nil
}

func newObjectFromValues(values []any) (o db.Object, err error) {
	if len(values) != len(objectColumns) {
		return o, fmt.Errorf("object: expected %d columns, got %d", len(objectColumns), len(values))
	}
	if o.ID, err = tryGetInt64(values[0]); err != nil {
		return o, fmt.Errorf("object: id: %w", err)
	}
	strs := make([]string, 5)
	for i, v := range values[1:] {
		s, ok := v.(string)
		if !ok {
			return o, fmt.Errorf("object: %s: expected string, got %T", objectColumns[i+1], v)
		}
		strs[i] = s
	}
	o.ObjectType, o.Position, o.Rotation, o.Scale, o.Collider = strs[0], strs[1], strs[2], strs[3], strs[4]
	return o, nil
}

func tryGetInt64(v any) (int64, error) {
	floatValue, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("expected float64, got %T", v)
	}
	return int64(floatValue), nil
}

func NewRqlite(client *rqlitehttp.Client) *Rqlite {
	return &Rqlite{
		client:          client,
		timeout:         time.Second * 30,
		readConsistency: rqlitehttp.ReadConsistencyLevelWeak,
	}
}

type Rqlite struct {
	client          *rqlitehttp.Client
	timeout         time.Duration
	readConsistency rqlitehttp.ReadConsistencyLevel
}

func (rq *Rqlite) isDB() db.DB { return rq }

func (rq *Rqlite) Query(ctx context.Context, queries ...db.Query) (outputs [][]db.Object, err error) {
	statements := make(rqlitehttp.SQLStatements, len(queries))
	for i, q := range queries {
		statements[i] = rqlitehttp.SQLStatement{
			SQL:         q.SQL,
			NamedParams: q.Args,
		}
	}
	opts := &rqlitehttp.QueryOptions{
		Timeout: rq.timeout,
		Level:   rq.readConsistency,
	}
	qr, err := rq.client.Query(ctx, statements, opts)
	if err != nil {
		return nil, err
	}
	if len(qr.Results) != len(queries) {
		return nil, fmt.Errorf("query: expected %d results, got %d", len(queries), len(qr.Results))
	}
	outputs = make([][]db.Object, len(queries))
	for i, result := range qr.Results {
		if result.Error != "" {
			return outputs, fmt.Errorf("query: error in query index %d: %s", i, result.Error)
		}
		if err = checkResultColumns(result); err != nil {
			return outputs, err
		}
		for _, values := range result.Values {
			o, err := newObjectFromValues(values)
			if err != nil {
				return outputs, err
			}
			outputs[i] = append(outputs[i], o)
		}
	}
	return outputs, nil
}

func (rq *Rqlite) Mutate(ctx context.Context, mutations ...db.Mutation) (rowsAffected []int64, err error) {
	statements := make(rqlitehttp.SQLStatements, len(mutations))
	for i, m := range mutations {
		statements[i] = rqlitehttp.SQLStatement{
			SQL:         m.SQL,
			NamedParams: m.Args,
		}
	}
	opts := &rqlitehttp.ExecuteOptions{
		Transaction: true,
		Wait:        true,
		Timeout:     rq.timeout,
	}
	qr, err := rq.client.Execute(ctx, statements, opts)
	if err != nil {
		return nil, err
	}
	if len(qr.Results) != len(mutations) {
		return nil, fmt.Errorf("mutate: expected %d results, got %d", len(mutations), len(qr.Results))
	}
	rowsAffected = make([]int64, len(mutations))
	errs := make([]error, len(mutations))
	for i, result := range qr.Results {
		if result.Error != "" {
			errs[i] = fmt.Errorf("mutate: error in mutation index %d: %s", i, result.Error)
			continue
		}
		rowsAffected[i] = result.RowsAffected
		if mutations[i].MustAffectRows && rowsAffected[i] == 0 {
			errs[i] = fmt.Errorf("mutate: mutation index %d affected no rows", i)
		}
	}
	return rowsAffected, errors.Join(errs...)
}

func (rq *Rqlite) QueryScalarInt64(ctx context.Context, q db.Query) (n int64, ok bool, err error) {
	statement := rqlitehttp.SQLStatement{
		SQL:         q.SQL,
		NamedParams: q.Args,
	}
	opts := &rqlitehttp.QueryOptions{
		Timeout: rq.timeout,
		Level:   rq.readConsistency,
	}
	qr, err := rq.client.Query(ctx, rqlitehttp.SQLStatements{statement}, opts)
	if err != nil {
		return 0, false, err
	}
	if len(qr.Results) != 1 {
		return 0, false, fmt.Errorf("scalar: expected 1 result, got %d", len(qr.Results))
	}
	if qr.Results[0].Error != "" {
		return 0, false, fmt.Errorf("scalar: %s", qr.Results[0].Error)
	}
	if len(qr.Results[0].Values) == 0 {
		return 0, false, nil
	}
	if len(qr.Results[0].Values[0]) != 1 {
		return 0, false, fmt.Errorf("scalar: expected 1 column, got %d", len(qr.Results[0].Values[0]))
	}
	v := qr.Results[0].Values[0][0]
	if v == nil {
		return 0, false, nil
	}
	n, err = tryGetInt64(v)
	if err != nil {
		return 0, false, fmt.Errorf("scalar: %w", err)
	}
	return n, true, nil
}

func (rq *Rqlite) Statements() db.StatementSet {
	return stmts.Rqlite{}
}
