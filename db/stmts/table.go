package stmts

// table returns the physical table name for a version token. The token must
// already have been validated against the [A-Za-z0-9_] allow-list, since the
// result is interpolated into SQL text.
func table(version string) string {
	return "objects_v" + version
}
