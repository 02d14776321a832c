package order

import "context"

// Repository reads orders and products from the catalog platform.
type Repository interface {
	// ListRecentOrders returns up to limit orders of any status, newest first.
	ListRecentOrders(ctx context.Context, limit int) ([]*Order, error)
	// ListProducts returns the products with the given ids. Unknown ids are
	// silently absent from the result.
	ListProducts(ctx context.Context, ids []int64) ([]*ProductRef, error)
}
