package orm

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/va6996/tourplanner/config"
)

// SetupTestDB opens a private in-memory SQLite database for one test.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(config.StorageConfig{
		Driver: "sqlite",
		DSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String()),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	return db
}
