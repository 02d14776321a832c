package shopify

// Product is the Admin REST product resource, restricted to the fields the
// portal writes or reads.
type Product struct {
	ID         int64       `json:"id,omitempty"`
	Title      string      `json:"title,omitempty"`
	BodyHTML   string      `json:"body_html"`
	Status     string      `json:"status,omitempty"`
	Vendor     string      `json:"vendor,omitempty"`
	Tags       string      `json:"tags"`
	Handle     string      `json:"handle,omitempty"`
	Variants   []Variant   `json:"variants,omitempty"`
	Images     []Image     `json:"images"`
	Metafields []Metafield `json:"metafields,omitempty"`
}

// Variant is a product variant. InventoryManagement is serialised as null when
// nil so the platform does not track stock.
type Variant struct {
	Price               string  `json:"price"`
	InventoryManagement *string `json:"inventory_management"`
}

// Image references an externally hosted image by URL.
type Image struct {
	Src string `json:"src"`
}

// Metafield is a namespaced key/value attached to a product.
type Metafield struct {
	Namespace string `json:"namespace"`
	Key       string `json:"key"`
	Type      string `json:"type"`
	Value     string `json:"value"`
}

// Order is the Admin REST order resource, restricted to the projected fields.
type Order struct {
	ID          int64      `json:"id"`
	OrderNumber int64      `json:"order_number,omitempty"`
	Name        string     `json:"name"`
	CreatedAt   string     `json:"created_at"`
	LineItems   []LineItem `json:"line_items"`
}

// LineItem is one order line. ProductID is nil for custom items and for
// products that have since been deleted.
type LineItem struct {
	Title     string `json:"title"`
	Quantity  int    `json:"quantity"`
	ProductID *int64 `json:"product_id"`
}

type productEnvelope struct {
	Product *Product `json:"product"`
}

type productsEnvelope struct {
	Products []Product `json:"products"`
}

type ordersEnvelope struct {
	Orders []Order `json:"orders"`
}
