package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"autoparts-storefront/internal/config"
	"autoparts-storefront/internal/db"
	"autoparts-storefront/internal/importer"
	categoryrepo "autoparts-storefront/internal/repository/category"
	fitmentrepo "autoparts-storefront/internal/repository/fitment"
	productrepo "autoparts-storefront/internal/repository/product"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to a parts price list (.csv or .xlsx)")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	logger := log.New(os.Stdout, "[importer] ", log.LstdFlags|log.LUTC|log.Lshortfile)
	format, err := importer.DetectFormat(filePath)
	if err != nil {
		logger.Fatalf("detect format: %v", err)
	}

	cfg := config.FromEnv()
	ctx := context.Background()

	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	writers := importer.Writers{
		Products:   productrepo.NewPostgres(pool, logger),
		Categories: categoryrepo.NewPostgres(pool, logger),
		Fitment:    fitmentrepo.NewPostgres(pool, logger),
	}

	var imp *importer.Importer
	switch format {
	case importer.FormatXLSX:
		data, err := os.ReadFile(filePath)
		if err != nil {
			logger.Fatalf("read file: %v", err)
		}
		imp, err = importer.NewXLSXImporter(data, writers, logger)
		if err != nil {
			logger.Fatalf("open workbook: %v", err)
		}
	default:
		f, err := os.Open(filePath)
		if err != nil {
			logger.Fatalf("open file: %v", err)
		}
		defer f.Close()
		imp = importer.NewCSVImporter(f, writers, logger)
	}

	start := time.Now()
	sum, err := imp.Run(ctx)
	if err != nil {
		logger.Fatalf("import failed: %v", err)
	}

	logger.Printf("imported products=%d links=%d skipped=%d in %s",
		sum.Products, sum.Links, sum.Skipped, time.Since(start).Truncate(time.Millisecond))
}
