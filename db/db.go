package db

import (
	"context"
	"errors"
)

// Object is one stored level object row. The geometry fields are opaque
// strings encoded by the game client; the service does not parse them.
type Object struct {
	ID         int64  `json:"id"`
	ObjectType string `json:"object_type"`
	Position   string `json:"position"`
	Rotation   string `json:"rotation"`
	Scale      string `json:"scale"`
	Collider   string `json:"collider"`
}

// Fields are the caller-supplied columns of a new object. The id is generated
// by the database.
type Fields struct {
	ObjectType string `json:"object_type"`
	Position   string `json:"position"`
	Rotation   string `json:"rotation"`
	Scale      string `json:"scale"`
	Collider   string `json:"collider"`
}

type DB interface {
	// Query runs queries against the database. Each query is expected to
	// return object rows, and the rows are returned as-is.
	Query(ctx context.Context, queries ...Query) (outputs [][]Object, err error)
	// Mutate runs mutations against the database.
	Mutate(ctx context.Context, mutations ...Mutation) (rowsAffected []int64, err error)
	// QueryScalarInt64 runs a query expected to return a single integer.
	// ok is false if no row was returned, or the value was NULL.
	QueryScalarInt64(ctx context.Context, q Query) (n int64, ok bool, err error)
	// Statements returns the statement set matching the database's SQL
	// dialect and parameter naming.
	Statements() StatementSet
}

type Query struct {
	SQL  string
	Args map[string]any
}

type Mutation struct {
	SQL            string
	Args           map[string]any
	MustAffectRows bool
}

var ErrNotFound = errors.New("not found")
