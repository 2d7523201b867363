package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/pkg/metrics"
	"github.com/shashiranjanraj/storefront/pkg/storeerr"
)

// OrderRepository handles database operations for Order and its line items.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func validateOrder(customerID uint, subtotal decimal.Decimal) error {
	if customerID == 0 {
		return storeerr.Validation("customer", "must reference a customer")
	}
	if subtotal.IsNegative() {
		return storeerr.Validation("subtotal", "must not be negative")
	}
	return nil
}

// lockForUpdate acquires a row-level lock where the dialect supports it.
// sqlite has no row locks; its writers serialize on the database lock.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// Create inserts a new order referencing an existing customer. A missing
// customer surfaces as a foreign key error from the store.
func (r *OrderRepository) Create(ctx context.Context, customerID uint, subtotal decimal.Decimal) (o models.Order, err error) {
	defer func() { metrics.RecordEntityOp("order", "create", err) }()

	if err = validateOrder(customerID, subtotal); err != nil {
		return models.Order{}, err
	}

	ctx, cancel := opTimeout(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("insert", time.Now())

	o = models.Order{CustomerID: customerID, Subtotal: subtotal.Round(2)}
	if dbErr := r.db.WithContext(ctx).Omit(clause.Associations).Create(&o).Error; dbErr != nil {
		err = storeerr.Translate(dbErr)
		return models.Order{}, err
	}
	return o, nil
}

// Find looks up an order by primary key.
func (r *OrderRepository) Find(ctx context.Context, id uint) (models.Order, error) {
	ctx, cancel := opTimeout(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("select", time.Now())

	var o models.Order
	if err := r.db.WithContext(ctx).First(&o, id).Error; err != nil {
		return models.Order{}, storeerr.Translate(err)
	}
	return o, nil
}

// All returns every order in creation order.
func (r *OrderRepository) All(ctx context.Context) ([]models.Order, error) {
	ctx, cancel := opTimeout(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("select", time.Now())

	orders := make([]models.Order, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&orders).Error; err != nil {
		return nil, storeerr.Translate(err)
	}
	return orders, nil
}

// Update replaces the order's customer and subtotal.
func (r *OrderRepository) Update(ctx context.Context, id, customerID uint, subtotal decimal.Decimal) (o models.Order, err error) {
	defer func() { metrics.RecordEntityOp("order", "update", err) }()

	if err = validateOrder(customerID, subtotal); err != nil {
		return models.Order{}, err
	}

	ctx, cancel := opTimeout(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("update", time.Now())

	txErr := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&o, id).Error; err != nil {
			return err
		}
		o.CustomerID = customerID
		o.Subtotal = subtotal.Round(2)
		return tx.Omit(clause.Associations).Save(&o).Error
	})
	if txErr != nil {
		err = storeerr.Translate(txErr)
		return models.Order{}, err
	}
	return o, nil
}

// Delete removes an order together with its line items. The cascade is
// enforced by the order_products foreign key.
func (r *OrderRepository) Delete(ctx context.Context, id uint) (err error) {
	defer func() { metrics.RecordEntityOp("order", "delete", err) }()

	ctx, cancel := opTimeout(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("delete", time.Now())

	res := r.db.WithContext(ctx).Delete(&models.Order{}, id)
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

// AttachProduct adds a product to an order and grows the subtotal by the
// product's price. The line item insert and the subtotal update commit in
// one transaction; the order row is locked for the duration so concurrent
// attachments to the same order never lose an update. Attaching the same
// product twice is rejected by the line item's composite primary key.
func (r *OrderRepository) AttachProduct(ctx context.Context, orderID, productID uint) (o models.Order, err error) {
	defer func() { metrics.RecordEntityOp("order", "attach", err) }()

	ctx, cancel := opTimeout(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("update", time.Now())

	txErr := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).First(&o, orderID).Error; err != nil {
			return err
		}

		var p models.Product
		if err := tx.First(&p, productID).Error; err != nil {
			return err
		}

		item := models.OrderProduct{OrderID: orderID, ProductID: productID}
		if err := tx.Omit(clause.Associations).Create(&item).Error; err != nil {
			return err
		}

		o.Subtotal = o.Subtotal.Add(p.Price)
		return tx.Model(&models.Order{}).Where("id = ?", orderID).
			Update("subtotal", o.Subtotal).Error
	})
	if txErr != nil {
		err = storeerr.Translate(txErr)
		return models.Order{}, err
	}
	return o, nil
}

// DetachProduct is the inverse of AttachProduct: it removes the line item
// and shrinks the subtotal by the product's price, atomically.
func (r *OrderRepository) DetachProduct(ctx context.Context, orderID, productID uint) (o models.Order, err error) {
	defer func() { metrics.RecordEntityOp("order", "detach", err) }()

	ctx, cancel := opTimeout(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("update", time.Now())

	txErr := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).First(&o, orderID).Error; err != nil {
			return err
		}

		var p models.Product
		if err := tx.First(&p, productID).Error; err != nil {
			return err
		}

		res := tx.Where("order_id = ? AND product_id = ?", orderID, productID).
			Delete(&models.OrderProduct{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return storeerr.ErrNotFound
		}

		o.Subtotal = o.Subtotal.Sub(p.Price)
		return tx.Model(&models.Order{}).Where("id = ?", orderID).
			Update("subtotal", o.Subtotal).Error
	})
	if txErr != nil {
		err = storeerr.Translate(txErr)
		return models.Order{}, err
	}
	return o, nil
}

// LineItems returns the line items of an order in attachment order.
func (r *OrderRepository) LineItems(ctx context.Context, orderID uint) ([]models.OrderProduct, error) {
	ctx, cancel := opTimeout(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("select", time.Now())

	items := make([]models.OrderProduct, 0)
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("product_id").
		Find(&items).Error; err != nil {
		return nil, storeerr.Translate(err)
	}
	return items, nil
}
