package levelobjects

import (
	"context"
	"fmt"

	"github.com/a-h/levelobjects/db"
)

func NewStore(database db.DB) Store {
	return Store{
		db: database,
	}
}

// Store provides the level object operations over any of the database
// backends. Every method validates the version token before building SQL.
type Store struct {
	db db.DB
}

// Prepare creates the versioned table if it doesn't exist and deletes all of
// its rows. clean is true when the table is empty afterwards, which is the
// expected state.
func (s Store) Prepare(ctx context.Context, version string) (count int64, clean bool, err error) {
	if err = ValidateVersion(version); err != nil {
		return 0, false, err
	}
	set := s.db.Statements()
	if _, err = s.db.Mutate(ctx, set.CreateTable(version), set.DeleteAll(version)); err != nil {
		return 0, false, fmt.Errorf("prepare: %w", err)
	}
	count, _, err = s.db.QueryScalarInt64(ctx, set.Count(version))
	if err != nil {
		return 0, false, fmt.Errorf("prepare: count: %w", err)
	}
	return count, count == 0, nil
}

// List returns all objects for a version, ordered by id. An empty table
// yields an empty slice, not an error.
func (s Store) List(ctx context.Context, version string) (objects []db.Object, err error) {
	if err = ValidateVersion(version); err != nil {
		return nil, err
	}
	outputs, err := s.db.Query(ctx, s.db.Statements().SelectAll(version))
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	return outputs[0], nil
}

// Get returns the object with the given id. ok is false if no such row
// exists.
func (s Store) Get(ctx context.Context, version string, id int64) (o db.Object, ok bool, err error) {
	if err = ValidateVersion(version); err != nil {
		return db.Object{}, false, err
	}
	outputs, err := s.db.Query(ctx, s.db.Statements().SelectByID(version, id))
	if err != nil {
		return db.Object{}, false, fmt.Errorf("get: %w", err)
	}
	if len(outputs[0]) == 0 {
		return db.Object{}, false, nil
	}
	return outputs[0][0], true, nil
}

// FirstID returns the smallest id present for a version. ok is false if the
// table is empty.
func (s Store) FirstID(ctx context.Context, version string) (id int64, ok bool, err error) {
	if err = ValidateVersion(version); err != nil {
		return 0, false, err
	}
	id, ok, err = s.db.QueryScalarInt64(ctx, s.db.Statements().SelectMinID(version))
	if err != nil {
		return 0, false, fmt.Errorf("firstid: %w", err)
	}
	return id, ok, nil
}

// Set inserts one object and returns the row count after the insert. If the
// insert fails, the count round trip is skipped and the insert error is
// returned.
func (s Store) Set(ctx context.Context, version string, f db.Fields) (count int64, err error) {
	if err = ValidateVersion(version); err != nil {
		return 0, err
	}
	set := s.db.Statements()
	if _, err = s.db.Mutate(ctx, set.Insert(version, f)); err != nil {
		return 0, fmt.Errorf("set: insert: %w", err)
	}
	count, _, err = s.db.QueryScalarInt64(ctx, set.Count(version))
	if err != nil {
		return 0, fmt.Errorf("set: count: %w", err)
	}
	return count, nil
}

// Count returns the number of objects stored for a version.
func (s Store) Count(ctx context.Context, version string) (count int64, err error) {
	if err = ValidateVersion(version); err != nil {
		return 0, err
	}
	count, _, err = s.db.QueryScalarInt64(ctx, s.db.Statements().Count(version))
	if err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return count, nil
}
