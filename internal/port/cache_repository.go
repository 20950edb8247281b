package port

import (
	"context"

	"github.com/rl1809/shelf-service/internal/core/domain"
)

type ProductCache interface {
	// GetProducts returns a cached result, ok is false on a miss. version
	// identifies the cache state observed by the lookup and must be passed to
	// SetProducts so a result computed before an invalidation is never served.
	GetProducts(ctx context.Context, query domain.ProductQuery) (products []domain.RankedProduct, version string, ok bool, err error)

	// SetProducts stores a query result under the version seen by GetProducts
	SetProducts(ctx context.Context, query domain.ProductQuery, version string, products []domain.RankedProduct) error

	// InvalidateShopper drops every cached result for one shopper
	InvalidateShopper(ctx context.Context, shopperID string) error

	// InvalidateCatalog drops every cached result for all shoppers
	InvalidateCatalog(ctx context.Context) error
}
