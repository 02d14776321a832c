package order

import "strconv"

// Order is a platform order, projected to the fields the vendor view needs.
type Order struct {
	ID          int64
	OrderNumber int64
	Name        string
	CreatedAt   string
	LineItems   []LineItem
}

// LineItem is one order line. ProductID is nil when the line has no product.
type LineItem struct {
	Title     string
	Quantity  int
	ProductID *int64
}

// Number is the customer-facing order number: the numeric order_number when
// the platform sent one, the display name otherwise.
func (o *Order) Number() string {
	if o.OrderNumber != 0 {
		return strconv.FormatInt(o.OrderNumber, 10)
	}
	return o.Name
}

// ProductRef is the part of a catalog product used to attribute order lines.
type ProductRef struct {
	ID     int64
	Tags   string
	Handle string
}

// VendorOrderView is an order reduced to the lines a single vendor supplied.
type VendorOrderView struct {
	OrderNumber string            `json:"order_number"`
	CreatedAt   string            `json:"created_at"`
	Items       []VendorOrderItem `json:"items"`
}

// VendorOrderItem is one retained order line.
type VendorOrderItem struct {
	Title       string `json:"title"`
	Quantity    int    `json:"quantity"`
	ProductID   int64  `json:"product_id"`
	OrderNumber string `json:"order_number"`
}
