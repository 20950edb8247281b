package storage

import (
	"fmt"
	"strconv"
)

// Dialect carries the statements that differ between supported stores.
// Merge policy on conflict: shopper_products overwrites relevancy_score,
// products overwrites category and brand.
type Dialect struct {
	Name          string
	placeholder   func(n int) string
	shopperExists string
	upsertEdge    string
	upsertProduct string
}

var Postgres = Dialect{
	Name:          "postgres",
	placeholder:   func(n int) string { return "$" + strconv.Itoa(n) },
	shopperExists: `SELECT COUNT(*) FROM shoppers WHERE shopper_id = $1`,
	upsertEdge: `
		INSERT INTO shopper_products (shopper_id, product_id, relevancy_score)
		VALUES ($1, $2, $3)
		ON CONFLICT (shopper_id, product_id) DO UPDATE SET relevancy_score = EXCLUDED.relevancy_score`,
	upsertProduct: `
		INSERT INTO products (product_id, category, brand)
		VALUES ($1, $2, $3)
		ON CONFLICT (product_id) DO UPDATE SET category = EXCLUDED.category, brand = EXCLUDED.brand`,
}

var MySQL = Dialect{
	Name:          "mysql",
	placeholder:   func(int) string { return "?" },
	shopperExists: `SELECT COUNT(*) FROM shoppers WHERE shopper_id = ?`,
	upsertEdge: `
		INSERT INTO shopper_products (shopper_id, product_id, relevancy_score)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE relevancy_score = VALUES(relevancy_score)`,
	upsertProduct: `
		INSERT INTO products (product_id, category, brand)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE category = VALUES(category), brand = VALUES(brand)`,
}

func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case Postgres.Name:
		return Postgres, nil
	case MySQL.Name:
		return MySQL, nil
	default:
		return Dialect{}, fmt.Errorf("unsupported database driver %q", driver)
	}
}
