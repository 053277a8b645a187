package main

import (
	"context"
	"log"
	"os"

	"autoparts-storefront/internal/config"
	"autoparts-storefront/internal/db"
	categoryrepo "autoparts-storefront/internal/repository/category"
	fitmentrepo "autoparts-storefront/internal/repository/fitment"
	pricingrepo "autoparts-storefront/internal/repository/pricing"
	productrepo "autoparts-storefront/internal/repository/product"
	"autoparts-storefront/internal/seed"
	categorysvc "autoparts-storefront/internal/service/category"
	pricingsvc "autoparts-storefront/internal/service/pricing"
	productsvc "autoparts-storefront/internal/service/product"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	err = seed.Apply(ctx, seed.Repos{
		Products:   productsvc.New(productrepo.NewPostgres(pool, logger)),
		Categories: categorysvc.New(categoryrepo.NewPostgres(pool, logger)),
		Fitment:    fitmentrepo.NewPostgres(pool, logger),
		Rates:      pricingsvc.New(pricingrepo.NewPostgres(pool, logger)),
	}, logger)
	if err != nil {
		logger.Fatalf("seed apply: %v", err)
	}

	logger.Println("seed applied")
}
