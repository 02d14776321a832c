package order

import (
	"context"

	"github.com/georgemunganga/vendor-portal/internal/shopify"
)

var (
	orderFields   = []string{"id", "order_number", "created_at", "line_items", "name"}
	productFields = []string{"id", "title", "tags", "handle"}
)

// Source is the slice of the Shopify client the repository needs.
type Source interface {
	ListOrders(ctx context.Context, params shopify.ListOrdersParams) ([]shopify.Order, error)
	ListProductsByID(ctx context.Context, ids []int64, fields []string) ([]shopify.Product, error)
}

type shopifyRepo struct{ client Source }

func NewShopifyRepository(client Source) Repository {
	return &shopifyRepo{client: client}
}

func (r *shopifyRepo) ListRecentOrders(ctx context.Context, limit int) ([]*Order, error) {
	raw, err := r.client.ListOrders(ctx, shopify.ListOrdersParams{
		Status: "any",
		Limit:  limit,
		Fields: orderFields,
	})
	if err != nil {
		return nil, err
	}

	orders := make([]*Order, 0, len(raw))
	for _, o := range raw {
		items := make([]LineItem, 0, len(o.LineItems))
		for _, li := range o.LineItems {
			items = append(items, LineItem{Title: li.Title, Quantity: li.Quantity, ProductID: li.ProductID})
		}
		orders = append(orders, &Order{
			ID:          o.ID,
			OrderNumber: o.OrderNumber,
			Name:        o.Name,
			CreatedAt:   o.CreatedAt,
			LineItems:   items,
		})
	}
	return orders, nil
}

func (r *shopifyRepo) ListProducts(ctx context.Context, ids []int64) ([]*ProductRef, error) {
	raw, err := r.client.ListProductsByID(ctx, ids, productFields)
	if err != nil {
		return nil, err
	}
	products := make([]*ProductRef, 0, len(raw))
	for _, p := range raw {
		products = append(products, &ProductRef{ID: p.ID, Tags: p.Tags, Handle: p.Handle})
	}
	return products, nil
}
