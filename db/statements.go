package db

// StatementSet maps a (version, operation) pair to SQL text and bound
// parameters. The version token is the only value ever interpolated into
// SQL text, and callers must validate it before building a statement; every
// other value is a bound parameter.
type StatementSet interface {
	CreateTable(version string) Mutation
	DeleteAll(version string) Mutation
	SelectAll(version string) Query
	SelectByID(version string, id int64) Query
	SelectMinID(version string) Query
	Count(version string) Query
	Insert(version string, f Fields) Mutation

	// Migration bookkeeping, used by the migrate package only.
	MigrationsTable() Mutation
	MigrationApplied(name string) Query
	RecordMigration(name string) Mutation
}
