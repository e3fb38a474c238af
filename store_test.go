package levelobjects

import (
	"context"
	"testing"
)

// runStoreTests drives the full operation suite against a backend. Each
// subtest uses its own version token, so suites are isolated even when the
// backends share a database.
func runStoreTests(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("Prepare", newPrepareTest(ctx, store))
	t.Run("List", newListTest(ctx, store))
	t.Run("Get", newGetTest(ctx, store))
	t.Run("FirstID", newFirstIDTest(ctx, store))
	t.Run("Set", newSetTest(ctx, store))
	t.Run("Count", newCountTest(ctx, store))
	t.Run("Versions", newVersionsTest(ctx, store))
}
