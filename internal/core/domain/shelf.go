package domain

// ShelfItem is one (product, relevancy score) pair of a shopper's shelf.
// On upsert the score of an existing (shopper, product) edge is replaced.
type ShelfItem struct {
	ProductID      string
	RelevancyScore float64
}
