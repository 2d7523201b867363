// Package migration provides a registry-based database migration runner.
//
// Each migration file in database/migrations registers itself from init():
//
//	func init() {
//	    migration.Register("20260301000000_create_customers_table", &CreateCustomersTable{})
//	}
//
// Run from the CLI: storefront migrate / migrate:rollback / migrate:status.
package migration

import (
	"fmt"
	"sort"
	"time"

	"github.com/shashiranjanraj/storefront/pkg/logger"
	"gorm.io/gorm"
)

// Migration is the interface every migration must implement.
type Migration interface {
	Up(db *gorm.DB) error
	Down(db *gorm.DB) error
}

// record is the row stored in the tracking table.
type record struct {
	ID    uint      `gorm:"primaryKey;autoIncrement"`
	Name  string    `gorm:"uniqueIndex;size:255;not null"`
	Batch int       `gorm:"not null"`
	RunAt time.Time `gorm:"autoCreateTime"`
}

func (record) TableName() string { return "schema_migrations" }

type registered struct {
	name string
	m    Migration
}

var registry []registered

// Register adds a migration to the global registry. Names are
// timestamp-prefixed so they sort chronologically.
func Register(name string, m Migration) {
	registry = append(registry, registered{name: name, m: m})
}

// Runner executes and tracks migrations against one database handle.
type Runner struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Runner {
	return &Runner{db: db}
}

func (r *Runner) ensureTable() error {
	return r.db.AutoMigrate(&record{})
}

func (r *Runner) ran() (map[string]record, int, error) {
	var rows []record
	if err := r.db.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	byName := make(map[string]record, len(rows))
	lastBatch := 0
	for _, rec := range rows {
		byName[rec.Name] = rec
		if rec.Batch > lastBatch {
			lastBatch = rec.Batch
		}
	}
	return byName, lastBatch, nil
}

func (r *Runner) pending() ([]registered, int, error) {
	ranSet, lastBatch, err := r.ran()
	if err != nil {
		return nil, 0, err
	}

	var pending []registered
	for _, reg := range registry {
		if _, ok := ranSet[reg.name]; !ok {
			pending = append(pending, reg)
		}
	}

	sort.Slice(pending, func(i, j int) bool {
		return pending[i].name < pending[j].name
	})

	return pending, lastBatch, nil
}

// Run executes all pending migrations as a single batch.
func (r *Runner) Run() error {
	if err := r.ensureTable(); err != nil {
		return fmt.Errorf("migration: ensure table: %w", err)
	}

	pending, lastBatch, err := r.pending()
	if err != nil {
		return fmt.Errorf("migration: fetch pending: %w", err)
	}
	if len(pending) == 0 {
		logger.Info("migrations up to date")
		return nil
	}

	batch := lastBatch + 1
	for _, reg := range pending {
		logger.Info("migrating", "name", reg.name)
		if err := reg.m.Up(r.db); err != nil {
			return fmt.Errorf("migration %q: %w", reg.name, err)
		}
		if err := r.db.Create(&record{Name: reg.name, Batch: batch}).Error; err != nil {
			return fmt.Errorf("migration %q: record: %w", reg.name, err)
		}
	}

	return nil
}

// Rollback reverses the most recent batch in reverse name order.
func (r *Runner) Rollback() error {
	if err := r.ensureTable(); err != nil {
		return fmt.Errorf("migration: ensure table: %w", err)
	}

	ranSet, lastBatch, err := r.ran()
	if err != nil {
		return fmt.Errorf("migration: fetch ran: %w", err)
	}
	if lastBatch == 0 {
		logger.Info("nothing to roll back")
		return nil
	}

	var names []string
	for name, rec := range ranSet {
		if rec.Batch == lastBatch {
			names = append(names, name)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	byName := make(map[string]Migration, len(registry))
	for _, reg := range registry {
		byName[reg.name] = reg.m
	}

	for _, name := range names {
		m, ok := byName[name]
		if !ok {
			return fmt.Errorf("migration %q: not registered, cannot roll back", name)
		}
		logger.Info("rolling back", "name", name)
		if err := m.Down(r.db); err != nil {
			return fmt.Errorf("migration %q: down: %w", name, err)
		}
		if err := r.db.Where("name = ?", name).Delete(&record{}).Error; err != nil {
			return fmt.Errorf("migration %q: unrecord: %w", name, err)
		}
	}

	return nil
}

// Status prints one line per registered migration.
func (r *Runner) Status() error {
	if err := r.ensureTable(); err != nil {
		return fmt.Errorf("migration: ensure table: %w", err)
	}

	ranSet, _, err := r.ran()
	if err != nil {
		return fmt.Errorf("migration: fetch ran: %w", err)
	}

	for _, reg := range registry {
		if rec, ok := ranSet[reg.name]; ok {
			fmt.Printf("  ran    %s  (batch %d)\n", reg.name, rec.Batch)
		} else {
			fmt.Printf("  pending %s\n", reg.name)
		}
	}
	return nil
}
