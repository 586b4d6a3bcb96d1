package database

import (
	"path/filepath"
	"testing"

	"newsroom/config"
	"newsroom/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestLogLevel(t *testing.T) {
	assert.Equal(t, logger.Info, LogLevel(&config.Config{Env: "development"}))
	assert.Equal(t, logger.Warn, LogLevel(&config.Config{Env: "production"}))
}

func TestDialector(t *testing.T) {
	d, err := Dialector(&config.Config{DBDriver: config.DriverPostgres})
	require.NoError(t, err)
	assert.Equal(t, "postgres", d.Name())

	d, err = Dialector(&config.Config{DBDriver: config.DriverSQLite, DBPath: ":memory:"})
	require.NoError(t, err)
	assert.Equal(t, "sqlite", d.Name())

	_, err = Dialector(&config.Config{DBDriver: "mysql"})
	assert.Error(t, err)
}

func TestConnectAndMigrate_SQLite(t *testing.T) {
	cfg := &config.Config{
		Env:      "test",
		DBDriver: config.DriverSQLite,
		DBPath:   filepath.Join(t.TempDir(), "news.db"),
	}

	db, err := Connect(cfg, logger.Silent)
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})

	require.NoError(t, Migrate(db))
	assert.True(t, db.Migrator().HasTable(&models.News{}))
	assert.True(t, db.Migrator().HasIndex(&models.News{}, "Slug"))
	assert.True(t, db.Migrator().HasIndex(&models.News{}, "Name"))
}
