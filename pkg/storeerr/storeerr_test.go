package storeerr

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslateGormSentinels(t *testing.T) {
	assert.ErrorIs(t, Translate(gorm.ErrRecordNotFound), ErrNotFound)
	assert.ErrorIs(t, Translate(gorm.ErrForeignKeyViolated), ErrForeignKey)
	assert.ErrorIs(t, Translate(gorm.ErrDuplicatedKey), ErrDuplicate)
}

func TestTranslateContext(t *testing.T) {
	assert.ErrorIs(t, Translate(context.DeadlineExceeded), ErrTimeout)
	assert.ErrorIs(t, Translate(context.Canceled), ErrTimeout)
}

func TestTranslatePostgresCodes(t *testing.T) {
	assert.ErrorIs(t, Translate(&pgconn.PgError{Code: "23503"}), ErrForeignKey)
	assert.ErrorIs(t, Translate(&pgconn.PgError{Code: "23505"}), ErrDuplicate)
	assert.ErrorIs(t, Translate(&pgconn.PgError{Code: "57014"}), ErrTimeout)

	err := Translate(&pgconn.PgError{Code: "23502", ColumnName: "name"})
	assert.True(t, IsValidation(err))
}

func TestTranslateSQLiteMessages(t *testing.T) {
	assert.ErrorIs(t, Translate(errors.New("FOREIGN KEY constraint failed")), ErrForeignKey)
	assert.ErrorIs(t, Translate(errors.New("UNIQUE constraint failed: order_products.order_id, order_products.product_id")), ErrDuplicate)

	err := Translate(errors.New("NOT NULL constraint failed: customers.name"))
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "name")
}

func TestTranslatePassthrough(t *testing.T) {
	assert.Nil(t, Translate(nil))

	plain := errors.New("disk on fire")
	assert.Equal(t, plain, Translate(plain))

	ve := Validation("name", "must not be empty")
	assert.Equal(t, error(ve), Translate(ve))
}
