// Package pgtest provides migrated throwaway databases for tests.
package pgtest

import (
	"path/filepath"
	"testing"

	"eats/internal/adapters/out/postgres"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewSQLite opens a file backed SQLite database under t.TempDir with the full
// schema applied. The connection is closed when the test ends.
func NewSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "eats.db") + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	db, err := postgres.Open(postgres.Config{Driver: postgres.DriverSQLite, SQLitePath: path})
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, sqlErr := db.DB(); sqlErr == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
