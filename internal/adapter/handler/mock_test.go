package handler

import (
	"context"
	"fmt"

	"github.com/rl1809/shelf-service/internal/core/domain"
)

type mockShelfUseCase struct {
	recordShelfFn   func(string, []domain.ShelfItem) error
	recordProductFn func(domain.Product) error
	queryFn         func(domain.ProductQuery) ([]domain.RankedProduct, error)
	pingErr         error
}

func (m *mockShelfUseCase) RecordShelf(ctx context.Context, shopperID string, shelf []domain.ShelfItem) error {
	if m.recordShelfFn != nil {
		return m.recordShelfFn(shopperID, shelf)
	}
	return fmt.Errorf("not configured")
}

func (m *mockShelfUseCase) RecordProduct(ctx context.Context, product domain.Product) error {
	if m.recordProductFn != nil {
		return m.recordProductFn(product)
	}
	return fmt.Errorf("not configured")
}

func (m *mockShelfUseCase) QueryProducts(ctx context.Context, q domain.ProductQuery) ([]domain.RankedProduct, error) {
	if m.queryFn != nil {
		return m.queryFn(q)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockShelfUseCase) Ping(ctx context.Context) error {
	return m.pingErr
}
