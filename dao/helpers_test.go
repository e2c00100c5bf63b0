package dao

import (
	"Quorum/config"
	"Quorum/models"
	"Quorum/pkg/database"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(&config.Database{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "quorum.db"),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
