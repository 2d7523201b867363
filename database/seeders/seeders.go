// Package seeders fills the database with demo data. Seeders register
// themselves from init() and run via the seed command.
package seeders

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/pkg/logger"
)

// Seeder populates one slice of demo data. Seeders must be idempotent:
// running seed twice leaves the database as if it ran once.
type Seeder interface {
	Run(db *gorm.DB) error
}

type registered struct {
	name string
	s    Seeder
}

var registry []registered

func Register(name string, s Seeder) {
	registry = append(registry, registered{name: name, s: s})
}

// RunAll executes every registered seeder in registration order.
func RunAll(db *gorm.DB) error {
	for _, reg := range registry {
		logger.Info("seeding", "name", reg.name)
		if err := reg.s.Run(db); err != nil {
			return fmt.Errorf("seeder %q: %w", reg.name, err)
		}
	}
	return nil
}
