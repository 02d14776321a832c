package catalog

import "context"

// Repository persists draft products in the catalog platform.
type Repository interface {
	// Create stores p and sets p.ID to the platform-assigned id.
	Create(ctx context.Context, p *DraftProduct) error
}
