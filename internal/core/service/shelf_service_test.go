package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rl1809/shelf-service/internal/core/domain"
)

// Mock ShelfRepository
type mockShelfRepo struct {
	mu        sync.Mutex
	shoppers  map[string]bool
	products  map[string]domain.Product
	edges     map[string]map[string]float64
	failOn    string // product id whose upsert fails
	err       error
	listCalls int
}

func newMockShelfRepo(shoppers ...string) *mockShelfRepo {
	m := &mockShelfRepo{
		shoppers: make(map[string]bool),
		products: make(map[string]domain.Product),
		edges:    make(map[string]map[string]float64),
	}
	for _, s := range shoppers {
		m.shoppers[s] = true
	}
	return m
}

func (m *mockShelfRepo) ShopperExists(ctx context.Context, shopperID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	return m.shoppers[shopperID], nil
}

func (m *mockShelfRepo) UpsertShelf(ctx context.Context, shopperID string, shelf []domain.ShelfItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	staged := make(map[string]float64)
	for k, v := range m.edges[shopperID] {
		staged[k] = v
	}
	for _, item := range shelf {
		if item.ProductID == m.failOn {
			return errors.New("upsert failed")
		}
		staged[item.ProductID] = item.RelevancyScore
	}
	m.edges[shopperID] = staged
	return nil
}

func (m *mockShelfRepo) UpsertProduct(ctx context.Context, product domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.products[product.ProductID] = product
	return nil
}

func (m *mockShelfRepo) ListProducts(ctx context.Context, q domain.ProductQuery) ([]domain.RankedProduct, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++
	if m.err != nil {
		return nil, m.err
	}

	var out []domain.RankedProduct
	for productID, score := range m.edges[q.ShopperID] {
		p, ok := m.products[productID]
		if !ok {
			continue
		}
		category, brand := deref(p.Category), deref(p.Brand)
		if q.Category != "" && category != q.Category {
			continue
		}
		if q.Brand != "" && brand != q.Brand {
			continue
		}
		out = append(out, domain.RankedProduct{
			ProductID: p.ProductID, Category: category, Brand: brand, RelevancyScore: score,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RelevancyScore > out[j].RelevancyScore })
	if len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (m *mockShelfRepo) Ping(ctx context.Context) error {
	return m.err
}

func strPtr(s string) *string { return &s }

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Mock ProductCache
type mockProductCache struct {
	entries           map[domain.ProductQuery][]domain.RankedProduct
	invalidatedShops  []string
	catalogInvalidate int
	err               error
}

func newMockProductCache() *mockProductCache {
	return &mockProductCache{entries: make(map[domain.ProductQuery][]domain.RankedProduct)}
}

func (c *mockProductCache) GetProducts(ctx context.Context, q domain.ProductQuery) ([]domain.RankedProduct, string, bool, error) {
	if c.err != nil {
		return nil, "", false, c.err
	}
	p, ok := c.entries[q]
	return p, "v", ok, nil
}

func (c *mockProductCache) SetProducts(ctx context.Context, q domain.ProductQuery, version string, p []domain.RankedProduct) error {
	if c.err != nil {
		return c.err
	}
	c.entries[q] = p
	return nil
}

func (c *mockProductCache) InvalidateShopper(ctx context.Context, shopperID string) error {
	c.invalidatedShops = append(c.invalidatedShops, shopperID)
	for q := range c.entries {
		if q.ShopperID == shopperID {
			delete(c.entries, q)
		}
	}
	return c.err
}

func (c *mockProductCache) InvalidateCatalog(ctx context.Context) error {
	c.catalogInvalidate++
	c.entries = make(map[domain.ProductQuery][]domain.RankedProduct)
	return c.err
}

func TestRecordShelf_Success(t *testing.T) {
	repo := newMockShelfRepo("s1")
	svc := NewShelfService(repo, nil, 100)

	err := svc.RecordShelf(context.Background(), "s1", []domain.ShelfItem{
		{ProductID: "p1", RelevancyScore: 5},
		{ProductID: "p2", RelevancyScore: 7},
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]float64{"p1": 5, "p2": 7}, repo.edges["s1"])
}

func TestRecordShelf_UnknownShopper(t *testing.T) {
	repo := newMockShelfRepo("s1")
	svc := NewShelfService(repo, nil, 100)

	err := svc.RecordShelf(context.Background(), "ghost", []domain.ShelfItem{{ProductID: "p1", RelevancyScore: 1}})
	assert.ErrorIs(t, err, ErrShopperNotFound)
	assert.Empty(t, repo.edges, "no mutation for unknown shopper")
}

func TestRecordShelf_DuplicateProductLastWins(t *testing.T) {
	repo := newMockShelfRepo("s1")
	svc := NewShelfService(repo, nil, 100)

	err := svc.RecordShelf(context.Background(), "s1", []domain.ShelfItem{
		{ProductID: "p1", RelevancyScore: 5},
		{ProductID: "p1", RelevancyScore: 9},
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]float64{"p1": 9}, repo.edges["s1"])
}

func TestRecordShelf_FailureLeavesPriorState(t *testing.T) {
	repo := newMockShelfRepo("s1")
	svc := NewShelfService(repo, nil, 100)
	ctx := context.Background()

	require.NoError(t, svc.RecordShelf(ctx, "s1", []domain.ShelfItem{{ProductID: "p1", RelevancyScore: 1}}))

	repo.failOn = "bad"
	err := svc.RecordShelf(ctx, "s1", []domain.ShelfItem{
		{ProductID: "p1", RelevancyScore: 99},
		{ProductID: "bad", RelevancyScore: 2},
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrShopperNotFound)

	assert.Equal(t, map[string]float64{"p1": 1}, repo.edges["s1"])
}

func TestRecordShelf_Validation(t *testing.T) {
	svc := NewShelfService(newMockShelfRepo("s1"), nil, 100)
	ctx := context.Background()

	assert.ErrorIs(t, svc.RecordShelf(ctx, "", nil), ErrInvalidRequest)
	assert.ErrorIs(t, svc.RecordShelf(ctx, "s1", []domain.ShelfItem{{RelevancyScore: 1}}), ErrInvalidRequest)
}

func TestRecordShelf_EmptyShelf(t *testing.T) {
	svc := NewShelfService(newMockShelfRepo("s1"), nil, 100)
	assert.NoError(t, svc.RecordShelf(context.Background(), "s1", nil))
}

func TestRecordShelf_StoreErrorOnExistenceCheck(t *testing.T) {
	repo := newMockShelfRepo("s1")
	repo.err = errors.New("connection refused")
	svc := NewShelfService(repo, nil, 100)

	err := svc.RecordShelf(context.Background(), "s1", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.NotErrorIs(t, err, ErrShopperNotFound)
}

func TestRecordProduct_LastWriteWins(t *testing.T) {
	repo := newMockShelfRepo()
	svc := NewShelfService(repo, nil, 100)
	ctx := context.Background()

	require.NoError(t, svc.RecordProduct(ctx, domain.Product{ProductID: "p1", Category: strPtr("shoes"), Brand: strPtr("acme")}))
	require.NoError(t, svc.RecordProduct(ctx, domain.Product{ProductID: "p1", Category: strPtr("shoes"), Brand: strPtr("acme")}))
	assert.Len(t, repo.products, 1)

	require.NoError(t, svc.RecordProduct(ctx, domain.Product{ProductID: "p1", Category: strPtr("hats"), Brand: strPtr("zeta")}))
	assert.Equal(t, domain.Product{ProductID: "p1", Category: strPtr("hats"), Brand: strPtr("zeta")}, repo.products["p1"])
}

func TestRecordProduct_MissingID(t *testing.T) {
	svc := NewShelfService(newMockShelfRepo(), nil, 100)
	assert.ErrorIs(t, svc.RecordProduct(context.Background(), domain.Product{Category: strPtr("shoes")}), ErrInvalidRequest)
}

func seedCatalog(t *testing.T, svc *ShelfService) {
	t.Helper()
	ctx := context.Background()
	for _, p := range []domain.Product{
		{ProductID: "p1", Category: strPtr("shoes"), Brand: strPtr("acme")},
		{ProductID: "p2", Category: strPtr("shoes"), Brand: strPtr("zeta")},
		{ProductID: "p3", Category: strPtr("hats"), Brand: strPtr("acme")},
		{ProductID: "p4", Category: strPtr("shoes"), Brand: strPtr("acme")},
	} {
		require.NoError(t, svc.RecordProduct(ctx, p))
	}
	require.NoError(t, svc.RecordShelf(ctx, "s1", []domain.ShelfItem{
		{ProductID: "p1", RelevancyScore: 3},
		{ProductID: "p2", RelevancyScore: 8},
		{ProductID: "p3", RelevancyScore: 9},
		{ProductID: "p4", RelevancyScore: 5},
	}))
}

func TestQueryProducts_FilterAndLimit(t *testing.T) {
	svc := NewShelfService(newMockShelfRepo("s1"), nil, 100)
	seedCatalog(t, svc)

	products, err := svc.QueryProducts(context.Background(), domain.ProductQuery{ShopperID: "s1", Category: "shoes", Limit: 2})
	require.NoError(t, err)

	require.Len(t, products, 2)
	assert.Equal(t, "p2", products[0].ProductID)
	assert.Equal(t, "p4", products[1].ProductID)
	for _, p := range products {
		assert.Equal(t, "shoes", p.Category)
	}
}

func TestQueryProducts_NoMatchIsEmpty(t *testing.T) {
	svc := NewShelfService(newMockShelfRepo("s1"), nil, 100)

	products, err := svc.QueryProducts(context.Background(), domain.ProductQuery{ShopperID: "s1"})
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestQueryProducts_InvalidLimit(t *testing.T) {
	svc := NewShelfService(newMockShelfRepo("s1"), nil, 100)

	_, err := svc.QueryProducts(context.Background(), domain.ProductQuery{ShopperID: "s1", Limit: 1000})
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.ErrorIs(t, err, domain.ErrInvalidQuery)
}

func TestQueryProducts_ServedFromCache(t *testing.T) {
	repo := newMockShelfRepo("s1")
	cache := newMockProductCache()
	svc := NewShelfService(repo, cache, 100)
	seedCatalog(t, svc)
	ctx := context.Background()
	q := domain.ProductQuery{ShopperID: "s1"}

	first, err := svc.QueryProducts(ctx, q)
	require.NoError(t, err)
	second, err := svc.QueryProducts(ctx, q)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.listCalls)
}

func TestQueryProducts_WritesInvalidateCache(t *testing.T) {
	repo := newMockShelfRepo("s1")
	cache := newMockProductCache()
	svc := NewShelfService(repo, cache, 100)
	seedCatalog(t, svc)
	ctx := context.Background()
	q := domain.ProductQuery{ShopperID: "s1", Limit: 1}

	_, err := svc.QueryProducts(ctx, q)
	require.NoError(t, err)

	require.NoError(t, svc.RecordShelf(ctx, "s1", []domain.ShelfItem{{ProductID: "p1", RelevancyScore: 50}}))
	assert.Contains(t, cache.invalidatedShops, "s1")

	products, err := svc.QueryProducts(ctx, q)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ProductID)
	assert.Equal(t, 50.0, products[0].RelevancyScore)
}

func TestQueryProducts_CacheFailureFallsBackToStore(t *testing.T) {
	repo := newMockShelfRepo("s1")
	cache := newMockProductCache()
	svc := NewShelfService(repo, cache, 100)
	seedCatalog(t, svc)

	cache.err = errors.New("redis down")
	products, err := svc.QueryProducts(context.Background(), domain.ProductQuery{ShopperID: "s1"})
	require.NoError(t, err)
	assert.Len(t, products, 4)
}

func TestRecordShelf_Concurrent(t *testing.T) {
	repo := newMockShelfRepo("s1")
	svc := NewShelfService(repo, nil, 100)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(score float64) {
			defer wg.Done()
			err := svc.RecordShelf(context.Background(), "s1", []domain.ShelfItem{
				{ProductID: "p1", RelevancyScore: score},
				{ProductID: "p2", RelevancyScore: score},
			})
			assert.NoError(t, err)
		}(float64(i))
	}
	wg.Wait()

	// Every call writes both edges with one score, so they must agree.
	assert.Equal(t, repo.edges["s1"]["p1"], repo.edges["s1"]["p2"])
}
