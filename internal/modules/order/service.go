package order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/georgemunganga/vendor-portal/internal/modules/vendor"
)

const (
	// RecentOrderLimit is how many of the newest orders are scanned.
	RecentOrderLimit = 100
	// MaxProductLookup is the platform's cap on ids per product lookup.
	MaxProductLookup = 250
)

var (
	ErrVendorIDRequired = errors.New("order: vendor id is required")
	// ErrOrdersFailed wraps any upstream failure; no partial result is returned.
	ErrOrdersFailed = errors.New("order: listing orders failed")
)

// Service defines vendor-facing order queries.
type Service interface {
	GetOrdersForVendor(ctx context.Context, vendorID string) ([]VendorOrderView, error)
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

// GetOrdersForVendor joins recent orders against product tags, since the
// platform cannot filter orders by vendor.
func (s *service) GetOrdersForVendor(ctx context.Context, vendorID string) ([]VendorOrderView, error) {
	id := vendor.ID(strings.TrimSpace(vendorID))
	if id == "" {
		return nil, ErrVendorIDRequired
	}

	orders, err := s.repo.ListRecentOrders(ctx, RecentOrderLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOrdersFailed, err)
	}

	ids := distinctProductIDs(orders)
	if len(ids) == 0 {
		return []VendorOrderView{}, nil
	}
	if len(ids) > MaxProductLookup {
		ids = ids[:MaxProductLookup]
	}

	products, err := s.repo.ListProducts(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOrdersFailed, err)
	}
	tagsByProduct := make(map[int64][]string, len(products))
	for _, p := range products {
		tagsByProduct[p.ID] = vendor.ParseTags(p.Tags)
	}

	views := []VendorOrderView{}
	for _, o := range orders {
		number := o.Number()
		var items []VendorOrderItem
		for _, li := range o.LineItems {
			if li.ProductID == nil {
				continue
			}
			tags, ok := tagsByProduct[*li.ProductID]
			if !ok || !id.Owns(tags) {
				continue
			}
			items = append(items, VendorOrderItem{
				Title:       li.Title,
				Quantity:    li.Quantity,
				ProductID:   *li.ProductID,
				OrderNumber: number,
			})
		}
		if len(items) > 0 {
			views = append(views, VendorOrderView{
				OrderNumber: number,
				CreatedAt:   o.CreatedAt,
				Items:       items,
			})
		}
	}
	return views, nil
}

// distinctProductIDs returns each referenced product id once, in first-seen
// order.
func distinctProductIDs(orders []*Order) []int64 {
	seen := make(map[int64]struct{})
	var ids []int64
	for _, o := range orders {
		for _, li := range o.LineItems {
			if li.ProductID == nil {
				continue
			}
			if _, dup := seen[*li.ProductID]; dup {
				continue
			}
			seen[*li.ProductID] = struct{}{}
			ids = append(ids, *li.ProductID)
		}
	}
	return ids
}
