package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/structech/survey-api/internal/models"
)

func TestInitialize(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "survey.db")

	db, err := Initialize(dbPath, Options{EnableForeignKeys: true})
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	assert.NoError(t, db.HealthCheck())
}

func TestAutoMigrate(t *testing.T) {
	db, err := Initialize(filepath.Join(t.TempDir(), "survey.db"), Options{})
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	err = db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Block{},
		&models.CrackRecord{},
		&models.DesignMap{},
	)
	require.NoError(t, err)

	for _, table := range []string{"users", "projects", "blocks", "crack_records", "design_maps"} {
		assert.True(t, db.Migrator().HasTable(table), "expected table %s", table)
	}
}

func TestDSN(t *testing.T) {
	assert.Equal(t, "a.db", dsn("a.db", Options{}))
	assert.Equal(t, "a.db?_journal_mode=WAL", dsn("a.db", Options{EnableWAL: true}))
	assert.Equal(t, "a.db?_journal_mode=WAL&_foreign_keys=on", dsn("a.db", Options{EnableWAL: true, EnableForeignKeys: true}))
	assert.Equal(t, "a.db?_foreign_keys=on", dsn("a.db", Options{EnableForeignKeys: true}))
}

func TestHealthCheckUninitialized(t *testing.T) {
	var db *DB
	assert.Error(t, db.HealthCheck())
}
