package migration

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type widgets struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:255"`
}

type gizmos struct {
	ID uint `gorm:"primaryKey"`
}

type createWidgets struct{}

func (createWidgets) Up(db *gorm.DB) error   { return db.AutoMigrate(&widgets{}) }
func (createWidgets) Down(db *gorm.DB) error { return db.Migrator().DropTable(&widgets{}) }

type createGizmos struct{}

func (createGizmos) Up(db *gorm.DB) error   { return db.AutoMigrate(&gizmos{}) }
func (createGizmos) Down(db *gorm.DB) error { return db.Migrator().DropTable(&gizmos{}) }

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	return db
}

func resetRegistry(t *testing.T) {
	t.Helper()

	saved := registry
	registry = nil
	t.Cleanup(func() { registry = saved })
}

func TestRunAndRollback(t *testing.T) {
	resetRegistry(t)
	Register("01_create_widgets", createWidgets{})
	Register("02_create_gizmos", createGizmos{})

	db := openTestDB(t)
	runner := New(db)

	require.NoError(t, runner.Run())
	assert.True(t, db.Migrator().HasTable(&widgets{}))
	assert.True(t, db.Migrator().HasTable(&gizmos{}))

	// Idempotent: a second run has nothing to do.
	require.NoError(t, runner.Run())

	require.NoError(t, runner.Rollback())
	assert.False(t, db.Migrator().HasTable(&widgets{}))
	assert.False(t, db.Migrator().HasTable(&gizmos{}))
}

func TestBatches(t *testing.T) {
	resetRegistry(t)
	Register("01_create_widgets", createWidgets{})

	db := openTestDB(t)
	runner := New(db)
	require.NoError(t, runner.Run())

	// A later migration lands in its own batch, and rollback only
	// reverses that batch.
	Register("02_create_gizmos", createGizmos{})
	require.NoError(t, runner.Run())

	require.NoError(t, runner.Rollback())
	assert.True(t, db.Migrator().HasTable(&widgets{}))
	assert.False(t, db.Migrator().HasTable(&gizmos{}))
}
