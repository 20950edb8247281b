package storage

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/rl1809/shelf-service/internal/core/domain"
)

func getRedisClient(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return client, mr
}

var sampleProducts = []domain.RankedProduct{
	{ProductID: "p2", Category: "shoes", Brand: "zeta", RelevancyScore: 8},
	{ProductID: "p1", Category: "shoes", Brand: "acme", RelevancyScore: 3},
}

func TestGetProducts_MissThenHit(t *testing.T) {
	client, _ := getRedisClient(t)
	ctx := context.Background()
	adapter := NewRedisAdapter(client, time.Minute)
	q := domain.ProductQuery{ShopperID: "s1", Category: "shoes", Limit: 10}

	_, version, ok, err := adapter.GetProducts(ctx, q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected miss on empty cache")
	}

	if err := adapter.SetProducts(ctx, q, version, sampleProducts); err != nil {
		t.Fatalf("SetProducts failed: %v", err)
	}

	products, _, ok, err := adapter.GetProducts(ctx, q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected hit after SetProducts")
	}
	if len(products) != 2 || products[0].ProductID != "p2" || products[0].RelevancyScore != 8 {
		t.Errorf("unexpected products: %+v", products)
	}
}

func TestGetProducts_FilterTupleIsPartOfKey(t *testing.T) {
	client, _ := getRedisClient(t)
	ctx := context.Background()
	adapter := NewRedisAdapter(client, time.Minute)

	shoes := domain.ProductQuery{ShopperID: "s1", Category: "shoes", Limit: 10}
	_, version, _, _ := adapter.GetProducts(ctx, shoes)
	if err := adapter.SetProducts(ctx, shoes, version, sampleProducts); err != nil {
		t.Fatalf("SetProducts failed: %v", err)
	}

	for _, q := range []domain.ProductQuery{
		{ShopperID: "s1", Category: "hats", Limit: 10},
		{ShopperID: "s1", Category: "shoes", Limit: 2},
		{ShopperID: "s2", Category: "shoes", Limit: 10},
	} {
		_, _, ok, err := adapter.GetProducts(ctx, q)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Errorf("expected miss for %+v", q)
		}
	}
}

func TestInvalidateShopper(t *testing.T) {
	client, _ := getRedisClient(t)
	ctx := context.Background()
	adapter := NewRedisAdapter(client, time.Minute)

	s1 := domain.ProductQuery{ShopperID: "s1", Limit: 10}
	s2 := domain.ProductQuery{ShopperID: "s2", Limit: 10}
	for _, q := range []domain.ProductQuery{s1, s2} {
		_, version, _, _ := adapter.GetProducts(ctx, q)
		if err := adapter.SetProducts(ctx, q, version, sampleProducts); err != nil {
			t.Fatalf("SetProducts failed: %v", err)
		}
	}

	if err := adapter.InvalidateShopper(ctx, "s1"); err != nil {
		t.Fatalf("InvalidateShopper failed: %v", err)
	}

	if _, _, ok, _ := adapter.GetProducts(ctx, s1); ok {
		t.Error("expected s1 entry to be invalidated")
	}
	if _, _, ok, _ := adapter.GetProducts(ctx, s2); !ok {
		t.Error("expected s2 entry to survive")
	}
}

func TestInvalidateCatalog(t *testing.T) {
	client, _ := getRedisClient(t)
	ctx := context.Background()
	adapter := NewRedisAdapter(client, time.Minute)

	q := domain.ProductQuery{ShopperID: "s1", Limit: 10}
	_, version, _, _ := adapter.GetProducts(ctx, q)
	adapter.SetProducts(ctx, q, version, sampleProducts)

	if err := adapter.InvalidateCatalog(ctx); err != nil {
		t.Fatalf("InvalidateCatalog failed: %v", err)
	}

	if _, _, ok, _ := adapter.GetProducts(ctx, q); ok {
		t.Error("expected catalog invalidation to hide every entry")
	}
}

func TestSetProducts_StaleVersionNeverServed(t *testing.T) {
	client, _ := getRedisClient(t)
	ctx := context.Background()
	adapter := NewRedisAdapter(client, time.Minute)
	q := domain.ProductQuery{ShopperID: "s1", Limit: 10}

	_, staleVersion, _, _ := adapter.GetProducts(ctx, q)

	// A shelf write lands between the lookup and the store.
	adapter.InvalidateShopper(ctx, "s1")
	adapter.SetProducts(ctx, q, staleVersion, sampleProducts)

	if _, _, ok, _ := adapter.GetProducts(ctx, q); ok {
		t.Error("result computed before invalidation must not be served")
	}
}

func TestSetProducts_TTL(t *testing.T) {
	client, mr := getRedisClient(t)
	ctx := context.Background()
	adapter := NewRedisAdapter(client, 30*time.Second)
	q := domain.ProductQuery{ShopperID: "s1", Limit: 10}

	_, version, _, _ := adapter.GetProducts(ctx, q)
	adapter.SetProducts(ctx, q, version, sampleProducts)

	mr.FastForward(31 * time.Second)

	if _, _, ok, _ := adapter.GetProducts(ctx, q); ok {
		t.Error("expected entry to expire")
	}
}

func TestGetProducts_RedisDown(t *testing.T) {
	client, mr := getRedisClient(t)
	adapter := NewRedisAdapter(client, time.Minute)
	mr.Close()

	_, _, ok, err := adapter.GetProducts(context.Background(), domain.ProductQuery{ShopperID: "s1", Limit: 10})
	if err == nil {
		t.Error("expected error when redis is unreachable")
	}
	if ok {
		t.Error("expected miss when redis is unreachable")
	}
}

func TestInvalidateShopper_Concurrent(t *testing.T) {
	client, _ := getRedisClient(t)
	ctx := context.Background()
	adapter := NewRedisAdapter(client, time.Minute)

	var wg sync.WaitGroup
	concurrency := 50
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := adapter.InvalidateShopper(ctx, "s1"); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	gen, err := client.Get(ctx, shopperGenKey("s1")).Int()
	if err != nil {
		t.Fatalf("read generation: %v", err)
	}
	if gen != concurrency {
		t.Errorf("expected generation %d, got %d", concurrency, gen)
	}
}
