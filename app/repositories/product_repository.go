package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/pkg/metrics"
	"github.com/shashiranjanraj/storefront/pkg/storeerr"
)

// ProductRepository handles database operations for Product.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func validateProduct(name string, price decimal.Decimal) error {
	if strings.TrimSpace(name) == "" {
		return storeerr.Validation("name", "must not be empty")
	}
	if price.IsNegative() {
		return storeerr.Validation("price", "must not be negative")
	}
	return nil
}

// Create inserts a new product. Prices are rounded to two fractional digits
// before the write.
func (r *ProductRepository) Create(ctx context.Context, name string, price decimal.Decimal) (p models.Product, err error) {
	defer func() { metrics.RecordEntityOp("product", "create", err) }()

	if err = validateProduct(name, price); err != nil {
		return models.Product{}, err
	}

	ctx, cancel := opTimeout(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("insert", time.Now())

	p = models.Product{Name: name, Price: price.Round(2)}
	if dbErr := r.db.WithContext(ctx).Create(&p).Error; dbErr != nil {
		err = storeerr.Translate(dbErr)
		return models.Product{}, err
	}
	return p, nil
}

// Find looks up a product by primary key.
func (r *ProductRepository) Find(ctx context.Context, id uint) (models.Product, error) {
	ctx, cancel := opTimeout(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("select", time.Now())

	var p models.Product
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return models.Product{}, storeerr.Translate(err)
	}
	return p, nil
}

// All returns every product in creation order.
func (r *ProductRepository) All(ctx context.Context) ([]models.Product, error) {
	ctx, cancel := opTimeout(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("select", time.Now())

	products := make([]models.Product, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, storeerr.Translate(err)
	}
	return products, nil
}

// Update replaces the product's name and price.
func (r *ProductRepository) Update(ctx context.Context, id uint, name string, price decimal.Decimal) (p models.Product, err error) {
	defer func() { metrics.RecordEntityOp("product", "update", err) }()

	if err = validateProduct(name, price); err != nil {
		return models.Product{}, err
	}

	ctx, cancel := opTimeout(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("update", time.Now())

	txErr := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&p, id).Error; err != nil {
			return err
		}
		p.Name = name
		p.Price = price.Round(2)
		return tx.Save(&p).Error
	})
	if txErr != nil {
		err = storeerr.Translate(txErr)
		return models.Product{}, err
	}
	return p, nil
}

// Delete removes a product. It fails with a foreign key error while the
// product still appears on any order: deleting a product must not erase
// order history.
func (r *ProductRepository) Delete(ctx context.Context, id uint) (err error) {
	defer func() { metrics.RecordEntityOp("product", "delete", err) }()

	ctx, cancel := opTimeout(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("delete", time.Now())

	res := r.db.WithContext(ctx).Delete(&models.Product{}, id)
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
