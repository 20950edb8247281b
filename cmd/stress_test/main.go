package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rl1809/shelf-service/internal/adapter/storage"
	"github.com/rl1809/shelf-service/internal/config"
	"github.com/rl1809/shelf-service/internal/core/domain"
	"github.com/rl1809/shelf-service/internal/core/service"
	"github.com/rl1809/shelf-service/internal/logging"
)

// stress_test fires concurrent shelf writes for one existing shopper and
// checks that every committed shelf landed whole: all edges must end up
// carrying the score of a single writer.
func main() {
	shopperID := flag.String("shopper", "s1", "existing shopper id")
	writers := flag.Int("writers", 50, "concurrent shelf writers")
	shelfSize := flag.Int("shelf", 20, "products per shelf")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load config")
	}
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: "console"})

	ctx := context.Background()

	dialect, err := storage.DialectFor(cfg.DBDriver)
	if err != nil {
		logging.Fatal().Err(err).Msg("unsupported database")
	}
	db, err := storage.OpenDB(ctx, storage.DBConfig{
		Driver:          cfg.DBDriver,
		User:            cfg.DBUser,
		Password:        cfg.DBPassword,
		Host:            cfg.DBHost,
		Port:            cfg.DBPort,
		Name:            cfg.DBName,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to connect database")
	}
	defer db.Close()

	repo := storage.NewSQLAdapter(db, dialect)
	shelfService := service.NewShelfService(repo, nil, *shelfSize)

	// Seed catalog so the read-back join sees every edge
	tag := "stress"
	for j := 0; j < *shelfSize; j++ {
		p := domain.Product{ProductID: fmt.Sprintf("stress-%03d", j), Category: &tag, Brand: &tag}
		if err := shelfService.RecordProduct(ctx, p); err != nil {
			logging.Fatal().Err(err).Msg("failed to seed products")
		}
	}

	// Counters
	var successCount atomic.Int32
	var failCount atomic.Int32

	// Spawn concurrent writers
	var wg sync.WaitGroup
	start := time.Now()

	for i := 0; i < *writers; i++ {
		wg.Add(1)
		go func(writer int) {
			defer wg.Done()

			shelf := make([]domain.ShelfItem, *shelfSize)
			for j := range shelf {
				shelf[j] = domain.ShelfItem{
					ProductID:      fmt.Sprintf("stress-%03d", j),
					RelevancyScore: float64(writer),
				}
			}

			if err := shelfService.RecordShelf(ctx, *shopperID, shelf); err != nil {
				failCount.Add(1)
				logging.Debug().Err(err).Int("writer", writer).Msg("shelf failed")
				return
			}
			successCount.Add(1)
		}(i)
	}

	wg.Wait()
	elapsed := time.Since(start)

	products, err := repo.ListProducts(ctx, domain.ProductQuery{ShopperID: *shopperID, Limit: *shelfSize})
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to read back shelf")
	}

	scores := make(map[float64]int)
	for _, p := range products {
		scores[p.RelevancyScore]++
	}

	fmt.Println("========== STRESS TEST RESULTS ==========")
	fmt.Printf("Writers:            %d\n", *writers)
	fmt.Printf("Shelf size:         %d\n", *shelfSize)
	fmt.Printf("Committed:          %d\n", successCount.Load())
	fmt.Printf("Failed:             %d\n", failCount.Load())
	fmt.Printf("Elapsed:            %v\n", elapsed)
	fmt.Printf("Distinct scores:    %d\n", len(scores))
	fmt.Println("==========================================")

	if len(products) != *shelfSize || len(scores) > 1 {
		fmt.Printf("FAIL: expected %d edges from one writer, got %d edges with %d distinct scores\n",
			*shelfSize, len(products), len(scores))
		db.Close()
		os.Exit(1)
	}
	fmt.Println("PASS: every edge carries the score of a single writer")
}
