package repositories

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/pkg/metrics"
	"github.com/shashiranjanraj/storefront/pkg/storeerr"
)

// CustomerRepository handles database operations for Customer.
type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Create inserts a new customer. The name must be non-empty.
func (r *CustomerRepository) Create(ctx context.Context, name string) (c models.Customer, err error) {
	defer func() { metrics.RecordEntityOp("customer", "create", err) }()

	if strings.TrimSpace(name) == "" {
		return models.Customer{}, storeerr.Validation("name", "must not be empty")
	}

	ctx, cancel := opTimeout(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("insert", time.Now())

	c = models.Customer{Name: name}
	if dbErr := r.db.WithContext(ctx).Create(&c).Error; dbErr != nil {
		err = storeerr.Translate(dbErr)
		return models.Customer{}, err
	}
	return c, nil
}

// Find looks up a customer by primary key.
func (r *CustomerRepository) Find(ctx context.Context, id uint) (models.Customer, error) {
	ctx, cancel := opTimeout(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("select", time.Now())

	var c models.Customer
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return models.Customer{}, storeerr.Translate(err)
	}
	return c, nil
}

// All returns every customer in creation order.
func (r *CustomerRepository) All(ctx context.Context) ([]models.Customer, error) {
	ctx, cancel := opTimeout(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("select", time.Now())

	customers := make([]models.Customer, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&customers).Error; err != nil {
		return nil, storeerr.Translate(err)
	}
	return customers, nil
}

// Update replaces the customer's name.
func (r *CustomerRepository) Update(ctx context.Context, id uint, name string) (c models.Customer, err error) {
	defer func() { metrics.RecordEntityOp("customer", "update", err) }()

	if strings.TrimSpace(name) == "" {
		return models.Customer{}, storeerr.Validation("name", "must not be empty")
	}

	ctx, cancel := opTimeout(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("update", time.Now())

	txErr := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&c, id).Error; err != nil {
			return err
		}
		c.Name = name
		return tx.Save(&c).Error
	})
	if txErr != nil {
		err = storeerr.Translate(txErr)
		return models.Customer{}, err
	}
	return c, nil
}

// Delete removes a customer. It fails with a foreign key error while any
// order still references the customer.
func (r *CustomerRepository) Delete(ctx context.Context, id uint) (err error) {
	defer func() { metrics.RecordEntityOp("customer", "delete", err) }()

	ctx, cancel := opTimeout(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("delete", time.Now())

	res := r.db.WithContext(ctx).Delete(&models.Customer{}, id)
	if res.Error != nil {
		err = storeerr.Translate(res.Error)
		return err
	}
	if res.RowsAffected == 0 {
		err = storeerr.ErrNotFound
		return err
	}
	return nil
}
