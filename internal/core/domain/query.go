package domain

import (
	"errors"
	"fmt"
)

const DefaultLimit = 10

var ErrInvalidQuery = errors.New("invalid product query")

// ProductQuery selects a shopper's products. Empty Category and Brand mean
// no filter; a zero Limit means DefaultLimit.
type ProductQuery struct {
	ShopperID string
	Category  string
	Brand     string
	Limit     int
}

// Normalize applies the default limit and checks bounds.
func (q ProductQuery) Normalize(maxLimit int) (ProductQuery, error) {
	if q.ShopperID == "" {
		return q, fmt.Errorf("%w: shopper id is required", ErrInvalidQuery)
	}
	if q.Limit == 0 {
		q.Limit = DefaultLimit
	}
	if q.Limit < 0 {
		return q, fmt.Errorf("%w: limit must be positive", ErrInvalidQuery)
	}
	if maxLimit > 0 && q.Limit > maxLimit {
		return q, fmt.Errorf("%w: limit must not exceed %d", ErrInvalidQuery, maxLimit)
	}
	return q, nil
}
