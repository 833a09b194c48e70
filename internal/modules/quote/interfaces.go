package quote

import (
	"context"

	"campground/internal/domain"
)

// SiteRepository supplies the catalog state a quote is priced against.
type SiteRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Site, error)
}
