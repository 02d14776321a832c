package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Text is a string field that also accepts a bare JSON number, as storefront
// templates often render ids and prices unquoted.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*t = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", b)
	}
	*t = Text(n.String())
	return nil
}

func (t Text) trimmed() string { return strings.TrimSpace(string(t)) }

// Image is an image the vendor already uploaded to the image host.
type Image struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Attributes are the optional artwork details a vendor may fill in.
type Attributes struct {
	Medium     Text `json:"medium"`
	Dimensions Text `json:"dimensions"`
	Year       Text `json:"year"`
}

// VendorSubmission is a product listing as posted by a vendor.
type VendorSubmission struct {
	VendorID    Text       `json:"vendorId" validate:"required,vendorid"`
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	Price       Text       `json:"price" validate:"required,price"`
	Images      []Image    `json:"images"`
	Attributes  Attributes `json:"attributes"`
}

// Metafield is a namespaced value stored alongside a product.
type Metafield struct {
	Namespace string `json:"namespace"`
	Key       string `json:"key"`
	Type      string `json:"type"`
	Value     string `json:"value"`
}

// DraftProduct is the unpublished catalog product created for a submission.
type DraftProduct struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Status      string      `json:"status"`
	Vendor      string      `json:"vendor"`
	Tags        []string    `json:"tags"`
	Price       string      `json:"price"`
	ImageURLs   []string    `json:"image_urls"`
	Metafields  []Metafield `json:"metafields"`
}
