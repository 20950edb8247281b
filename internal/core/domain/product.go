package domain

// Product is catalog metadata. On upsert every field is replaced by the
// incoming value; a nil Category or Brand is stored as NULL.
type Product struct {
	ProductID string
	Category  *string
	Brand     *string
}

// RankedProduct is a product joined with one shopper's relevancy score.
type RankedProduct struct {
	ProductID      string  `json:"product_id"`
	Category       string  `json:"category"`
	Brand          string  `json:"brand"`
	RelevancyScore float64 `json:"relevancy_score"`
}
