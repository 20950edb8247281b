package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rl1809/shelf-service/internal/core/domain"
	"github.com/rl1809/shelf-service/internal/logging"
	"github.com/rl1809/shelf-service/internal/port"
)

var (
	ErrShopperNotFound = errors.New("shopper does not exist")
	ErrInvalidRequest  = errors.New("invalid request")
)

type ShelfService struct {
	repo     port.ShelfRepository
	cache    port.ProductCache
	maxLimit int
}

// NewShelfService wires the service. cache may be nil, in which case every
// query goes to the repository.
func NewShelfService(repo port.ShelfRepository, cache port.ProductCache, maxLimit int) *ShelfService {
	return &ShelfService{
		repo:     repo,
		cache:    cache,
		maxLimit: maxLimit,
	}
}

// RecordShelf upserts the shopper's relevancy scores atomically. Unknown
// shoppers are rejected before any write.
func (s *ShelfService) RecordShelf(ctx context.Context, shopperID string, shelf []domain.ShelfItem) error {
	if shopperID == "" {
		return fmt.Errorf("%w: shopper id is required", ErrInvalidRequest)
	}
	for i, item := range shelf {
		if item.ProductID == "" {
			return fmt.Errorf("%w: shelf[%d] product id is required", ErrInvalidRequest, i)
		}
	}

	exists, err := s.repo.ShopperExists(ctx, shopperID)
	if err != nil {
		return fmt.Errorf("check shopper: %w", err)
	}
	if !exists {
		return ErrShopperNotFound
	}

	if err := s.repo.UpsertShelf(ctx, shopperID, shelf); err != nil {
		return err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateShopper(ctx, shopperID); err != nil {
			logging.Ctx(ctx).Warn().Err(err).Str("shopper_id", shopperID).Msg("cache invalidation failed")
		}
	}

	logging.Ctx(ctx).Debug().Str("shopper_id", shopperID).Int("items", len(shelf)).Msg("shelf recorded")
	return nil
}

func (s *ShelfService) RecordProduct(ctx context.Context, product domain.Product) error {
	if product.ProductID == "" {
		return fmt.Errorf("%w: product id is required", ErrInvalidRequest)
	}

	if err := s.repo.UpsertProduct(ctx, product); err != nil {
		return err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateCatalog(ctx); err != nil {
			logging.Ctx(ctx).Warn().Err(err).Str("product_id", product.ProductID).Msg("cache invalidation failed")
		}
	}
	return nil
}

// QueryProducts returns at most query.Limit products for the shopper, highest
// relevancy score first. No match yields an empty slice.
func (s *ShelfService) QueryProducts(ctx context.Context, query domain.ProductQuery) ([]domain.RankedProduct, error) {
	query, err := query.Normalize(s.maxLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	var version string
	cacheable := false
	if s.cache != nil {
		products, v, ok, err := s.cache.GetProducts(ctx, query)
		switch {
		case err != nil:
			logging.Ctx(ctx).Warn().Err(err).Str("shopper_id", query.ShopperID).Msg("cache read failed")
		case ok:
			return products, nil
		default:
			version, cacheable = v, true
		}
	}

	products, err := s.repo.ListProducts(ctx, query)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []domain.RankedProduct{}
	}

	if cacheable {
		if err := s.cache.SetProducts(ctx, query, version, products); err != nil {
			logging.Ctx(ctx).Warn().Err(err).Str("shopper_id", query.ShopperID).Msg("cache write failed")
		}
	}
	return products, nil
}

func (s *ShelfService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
