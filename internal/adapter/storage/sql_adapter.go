package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rl1809/shelf-service/internal/core/domain"
)

type SQLAdapter struct {
	db      *sql.DB
	dialect Dialect
}

func NewSQLAdapter(db *sql.DB, dialect Dialect) *SQLAdapter {
	return &SQLAdapter{db: db, dialect: dialect}
}

func (a *SQLAdapter) ShopperExists(ctx context.Context, shopperID string) (bool, error) {
	var count int
	err := a.db.QueryRowContext(ctx, a.dialect.shopperExists, shopperID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("count shopper: %w", err)
	}
	return count > 0, nil
}

// UpsertShelf writes every edge in one transaction. The first failing
// statement rolls back all edges written before it.
func (a *SQLAdapter) UpsertShelf(ctx context.Context, shopperID string, shelf []domain.ShelfItem) error {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, a.dialect.upsertEdge)
	if err != nil {
		return fmt.Errorf("prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, item := range shelf {
		if _, err := stmt.ExecContext(ctx, shopperID, item.ProductID, item.RelevancyScore); err != nil {
			return fmt.Errorf("upsert shopper product %s: %w", item.ProductID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (a *SQLAdapter) UpsertProduct(ctx context.Context, product domain.Product) error {
	_, err := a.db.ExecContext(ctx, a.dialect.upsertProduct,
		product.ProductID, nullString(product.Category), nullString(product.Brand),
	)
	if err != nil {
		return fmt.Errorf("upsert product: %w", err)
	}
	return nil
}

func (a *SQLAdapter) ListProducts(ctx context.Context, q domain.ProductQuery) ([]domain.RankedProduct, error) {
	query, args := newProductsQuery(a.dialect).
		Where("sp.shopper_id", q.ShopperID).
		WhereIf("p.category", q.Category).
		WhereIf("p.brand", q.Brand).
		Limit(q.Limit).
		Build()

	rows, err := a.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	products := []domain.RankedProduct{}
	for rows.Next() {
		var (
			p               domain.RankedProduct
			category, brand sql.NullString
		)
		if err := rows.Scan(&p.ProductID, &category, &brand, &p.RelevancyScore); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.Category = category.String
		p.Brand = brand.String
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	return products, nil
}

// nullString binds an unset attribute as NULL rather than "".
func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func (a *SQLAdapter) Ping(ctx context.Context) error {
	return a.db.PingContext(ctx)
}
