package storage

import (
	"strings"
)

const productsBaseQuery = `
		SELECT p.product_id, p.category, p.brand, sp.relevancy_score
		FROM products p
		INNER JOIN shopper_products sp ON sp.product_id = p.product_id`

type predicate struct {
	column string
	value  any
}

// selectQuery is immutable: Where and Limit return a new value so a base
// query can be shared between requests.
type selectQuery struct {
	dialect Dialect
	base    string
	preds   []predicate
	orderBy string
	limit   *int
}

func newProductsQuery(d Dialect) selectQuery {
	return selectQuery{
		dialect: d,
		base:    productsBaseQuery,
		orderBy: "sp.relevancy_score DESC",
	}
}

// Where appends an equality predicate bound to its own parameter slot.
func (q selectQuery) Where(column string, value any) selectQuery {
	preds := make([]predicate, len(q.preds), len(q.preds)+1)
	copy(preds, q.preds)
	q.preds = append(preds, predicate{column: column, value: value})
	return q
}

// WhereIf appends the predicate only when value is non-empty.
func (q selectQuery) WhereIf(column, value string) selectQuery {
	if value == "" {
		return q
	}
	return q.Where(column, value)
}

func (q selectQuery) Limit(n int) selectQuery {
	q.limit = &n
	return q
}

// Build renders the SQL text and its positional arguments.
func (q selectQuery) Build() (string, []any) {
	var sb strings.Builder
	args := make([]any, 0, len(q.preds)+1)

	sb.WriteString(q.base)
	for i, p := range q.preds {
		if i == 0 {
			sb.WriteString("\n\t\tWHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		args = append(args, p.value)
		sb.WriteString(p.column)
		sb.WriteString(" = ")
		sb.WriteString(q.dialect.placeholder(len(args)))
	}

	if q.orderBy != "" {
		sb.WriteString("\n\t\tORDER BY ")
		sb.WriteString(q.orderBy)
	}
	if q.limit != nil {
		args = append(args, *q.limit)
		sb.WriteString(" LIMIT ")
		sb.WriteString(q.dialect.placeholder(len(args)))
	}

	return sb.String(), args
}
