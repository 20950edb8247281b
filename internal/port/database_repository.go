package port

import (
	"context"

	"github.com/rl1809/shelf-service/internal/core/domain"
)

type ShelfRepository interface {
	// ShopperExists reports whether the shopper id is present in the shoppers table
	ShopperExists(ctx context.Context, shopperID string) (bool, error)

	// UpsertShelf upserts every item in one transaction, all-or-nothing
	UpsertShelf(ctx context.Context, shopperID string, shelf []domain.ShelfItem) error

	// UpsertProduct inserts or overwrites product metadata
	UpsertProduct(ctx context.Context, product domain.Product) error

	// ListProducts returns the shopper's products ordered by relevancy score descending
	ListProducts(ctx context.Context, query domain.ProductQuery) ([]domain.RankedProduct, error)

	// Ping checks that the store is reachable
	Ping(ctx context.Context) error
}
