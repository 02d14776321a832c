package catalog

import (
	"context"
	"strings"

	"github.com/georgemunganga/vendor-portal/internal/shopify"
)

// ProductCreator is the slice of the Shopify client the repository needs.
type ProductCreator interface {
	CreateProduct(ctx context.Context, p *shopify.Product) (*shopify.Product, error)
}

type shopifyRepo struct{ client ProductCreator }

func NewShopifyRepository(client ProductCreator) Repository {
	return &shopifyRepo{client: client}
}

func (r *shopifyRepo) Create(ctx context.Context, p *DraftProduct) error {
	created, err := r.client.CreateProduct(ctx, toShopifyProduct(p))
	if err != nil {
		return err
	}
	p.ID = created.ID
	return nil
}

func toShopifyProduct(p *DraftProduct) *shopify.Product {
	images := make([]shopify.Image, 0, len(p.ImageURLs))
	for _, u := range p.ImageURLs {
		images = append(images, shopify.Image{Src: u})
	}

	metafields := make([]shopify.Metafield, 0, len(p.Metafields))
	for _, m := range p.Metafields {
		metafields = append(metafields, shopify.Metafield{
			Namespace: m.Namespace,
			Key:       m.Key,
			Type:      m.Type,
			Value:     m.Value,
		})
	}

	return &shopify.Product{
		Title:    p.Title,
		BodyHTML: p.Description,
		Status:   p.Status,
		Vendor:   p.Vendor,
		Tags:     strings.Join(p.Tags, ","),
		// A nil InventoryManagement is sent as null: no stock tracking.
		Variants:   []shopify.Variant{{Price: p.Price}},
		Images:     images,
		Metafields: metafields,
	}
}
