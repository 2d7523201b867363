// Package repositories contains the typed data access layer. Every operation
// takes a context, runs as a single transaction against the store handle it
// was constructed with, and returns errors from the storeerr taxonomy only.
package repositories

import (
	"context"

	"github.com/shashiranjanraj/storefront/config"
)

// opTimeout bounds one repository operation with the configured statement
// timeout. A zero timeout leaves ctx untouched.
func opTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	d := config.StatementTimeout()
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}
