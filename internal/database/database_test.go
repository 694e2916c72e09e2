package database

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *Database {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one in-memory sqlite database per test; a second pooled connection
	// would see an empty schema
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db))

	return NewDatabase(db)
}
