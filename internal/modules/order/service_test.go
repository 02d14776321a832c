package order

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	orders      []*Order
	products    []*ProductRef
	ordersErr   error
	productsErr error

	orderLimit   int
	productCalls int
	requestedIDs []int64
}

func (f *fakeRepo) ListRecentOrders(_ context.Context, limit int) ([]*Order, error) {
	f.orderLimit = limit
	return f.orders, f.ordersErr
}

func (f *fakeRepo) ListProducts(_ context.Context, ids []int64) ([]*ProductRef, error) {
	f.productCalls++
	f.requestedIDs = ids
	return f.products, f.productsErr
}

func pid(id int64) *int64 { return &id }

func threeOrderFixture() *fakeRepo {
	return &fakeRepo{
		orders: []*Order{
			{ID: 1, OrderNumber: 1001, CreatedAt: "2024-05-01T10:00:00Z", LineItems: []LineItem{
				{Title: "Mug", Quantity: 1, ProductID: pid(200)},
			}},
			{ID: 2, OrderNumber: 1002, CreatedAt: "2024-05-02T10:00:00Z", LineItems: []LineItem{
				{Title: "Vase", Quantity: 2, ProductID: pid(100)},
				{Title: "Mug", Quantity: 1, ProductID: pid(200)},
				{Title: "Gift wrap", Quantity: 1},
			}},
			{ID: 3, OrderNumber: 1003, CreatedAt: "2024-05-03T10:00:00Z", LineItems: []LineItem{
				{Title: "Poster", Quantity: 3, ProductID: pid(300)},
			}},
		},
		products: []*ProductRef{
			{ID: 100, Tags: "vendor:7, ceramics"},
			{ID: 200, Tags: "vendor:70"},
			{ID: 300, Tags: "vendor:8"},
		},
	}
}

func TestGetOrdersForVendor_OnlyMatchingOrder(t *testing.T) {
	repo := threeOrderFixture()
	views, err := NewService(repo).GetOrdersForVendor(context.Background(), "7")
	require.NoError(t, err)

	assert.Equal(t, RecentOrderLimit, repo.orderLimit)
	assert.Equal(t, []int64{200, 100, 300}, repo.requestedIDs)
	assert.Equal(t, []VendorOrderView{{
		OrderNumber: "1002",
		CreatedAt:   "2024-05-02T10:00:00Z",
		Items: []VendorOrderItem{
			{Title: "Vase", Quantity: 2, ProductID: 100, OrderNumber: "1002"},
		},
	}}, views)
}

func TestGetOrdersForVendor_ExactTagMatch(t *testing.T) {
	repo := &fakeRepo{
		orders:   []*Order{{OrderNumber: 1, LineItems: []LineItem{{Title: "A", Quantity: 1, ProductID: pid(10)}}}},
		products: []*ProductRef{{ID: 10, Tags: "vendor:10,other-tag"}},
	}

	views, err := NewService(repo).GetOrdersForVendor(context.Background(), "1")
	require.NoError(t, err)
	assert.Empty(t, views, "vendor 1 must not match vendor:10")

	views, err = NewService(repo).GetOrdersForVendor(context.Background(), "10")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, int64(10), views[0].Items[0].ProductID)
}

func TestGetOrdersForVendor_PreservesOrderSequence(t *testing.T) {
	repo := &fakeRepo{
		orders: []*Order{
			{OrderNumber: 3, LineItems: []LineItem{{Title: "c", ProductID: pid(1)}}},
			{OrderNumber: 1, LineItems: []LineItem{{Title: "a", ProductID: pid(1)}}},
			{OrderNumber: 2, LineItems: []LineItem{{Title: "b", ProductID: pid(2)}, {Title: "b2", ProductID: pid(1)}}},
		},
		products: []*ProductRef{{ID: 1, Tags: "vendor:5"}, {ID: 2, Tags: "vendor:5"}},
	}
	svc := NewService(repo)

	first, err := svc.GetOrdersForVendor(context.Background(), "5")
	require.NoError(t, err)
	require.Len(t, first, 3)
	assert.Equal(t, "3", first[0].OrderNumber)
	assert.Equal(t, "1", first[1].OrderNumber)
	assert.Equal(t, "2", first[2].OrderNumber)
	assert.Equal(t, []string{"b", "b2"}, []string{first[2].Items[0].Title, first[2].Items[1].Title})

	second, err := svc.GetOrdersForVendor(context.Background(), "5")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGetOrdersForVendor_NoProductsSkipsLookup(t *testing.T) {
	repo := &fakeRepo{orders: []*Order{
		{OrderNumber: 1, LineItems: []LineItem{{Title: "Custom", Quantity: 1}}},
	}}
	views, err := NewService(repo).GetOrdersForVendor(context.Background(), "7")
	require.NoError(t, err)
	assert.NotNil(t, views)
	assert.Empty(t, views)
	assert.Zero(t, repo.productCalls)
}

func TestGetOrdersForVendor_SkipsUnknownProducts(t *testing.T) {
	repo := &fakeRepo{
		orders:   []*Order{{OrderNumber: 1, LineItems: []LineItem{{Title: "Deleted", ProductID: pid(99)}}}},
		products: []*ProductRef{},
	}
	views, err := NewService(repo).GetOrdersForVendor(context.Background(), "7")
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestGetOrdersForVendor_CapsProductLookup(t *testing.T) {
	var items []LineItem
	for i := int64(1); i <= 300; i++ {
		items = append(items, LineItem{Title: "x", Quantity: 1, ProductID: pid(i)})
	}
	repo := &fakeRepo{
		orders: []*Order{{OrderNumber: 1, LineItems: items}},
		// the platform returns only what was asked for
		products: []*ProductRef{{ID: 1, Tags: "vendor:7"}, {ID: 250, Tags: "vendor:7"}},
	}

	views, err := NewService(repo).GetOrdersForVendor(context.Background(), "7")
	require.NoError(t, err)
	require.Len(t, repo.requestedIDs, MaxProductLookup)
	assert.Equal(t, int64(1), repo.requestedIDs[0])
	assert.Equal(t, int64(250), repo.requestedIDs[MaxProductLookup-1])
	require.Len(t, views, 1)
	assert.Len(t, views[0].Items, 2)
}

func TestGetOrdersForVendor_OrderNumberFallback(t *testing.T) {
	repo := &fakeRepo{
		orders: []*Order{
			{Name: "#D12", LineItems: []LineItem{{Title: "x", ProductID: pid(1)}}},
			{OrderNumber: 1005, Name: "#1005", LineItems: []LineItem{{Title: "y", ProductID: pid(1)}}},
		},
		products: []*ProductRef{{ID: 1, Tags: "vendor:7"}},
	}
	views, err := NewService(repo).GetOrdersForVendor(context.Background(), "7")
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "#D12", views[0].OrderNumber)
	assert.Equal(t, "#D12", views[0].Items[0].OrderNumber)
	assert.Equal(t, "1005", views[1].OrderNumber)
}

func TestGetOrdersForVendor_Failures(t *testing.T) {
	cause := errors.New("HTTP 503")

	t.Run("orders call", func(t *testing.T) {
		repo := threeOrderFixture()
		repo.ordersErr = cause
		views, err := NewService(repo).GetOrdersForVendor(context.Background(), "7")
		assert.Nil(t, views)
		assert.ErrorIs(t, err, ErrOrdersFailed)
		assert.ErrorIs(t, err, cause)
		assert.Zero(t, repo.productCalls)
	})

	t.Run("products call", func(t *testing.T) {
		repo := threeOrderFixture()
		repo.productsErr = cause
		views, err := NewService(repo).GetOrdersForVendor(context.Background(), "7")
		assert.Nil(t, views)
		assert.ErrorIs(t, err, ErrOrdersFailed)
	})

	t.Run("blank vendor", func(t *testing.T) {
		_, err := NewService(&fakeRepo{}).GetOrdersForVendor(context.Background(), "  ")
		assert.ErrorIs(t, err, ErrVendorIDRequired)
	})
}
